// Package rbuf implements a resizable buffer that tracks three sizes
// separately, and a minimal growable list built on top of it.
//
// # Overview
//
// Most dynamic arrays conflate "how many elements are in use" with "how much
// storage is reserved". A Buffer keeps them apart:
//
//   - Count is the number of live slots, always the prefix [0, Count).
//   - Capacity is the number of slots reserved in the backing storage.
//
// Only the live prefix is ever readable or writable. Reserved slots beyond
// Count are zeroed whenever they stop being live, so a shrunk buffer never
// keeps otherwise unreachable objects alive.
//
// # Basic Usage
//
//	buf := rbuf.NewBuffer[string](2, 0)
//
//	// Expose a slot, then write it
//	if buf.IncreaseCountByOne() {
//		buf.Set(0, "a")
//	}
//
//	// Grow into new storage, keeping the live prefix
//	buf.Resize(8, buf.Count())
//
//	// Drop live slots; capacity is kept
//	buf.ResetCount()
//
// For the common case, List does the growth bookkeeping:
//
//	var l rbuf.List[int]
//	l.Append(10)
//	l.Append(20)
//	fmt.Println(l.Get(1), l.Count(), l.Capacity()) // 20 2 4
//
// # Mutation Model
//
// Every operation that changes the count or storage first builds the next
// Buffer value and then installs it with a single assignment. An increase
// that does not fit returns false and leaves the buffer exactly as it was;
// an operation that panics never gets as far as the assignment.
//
// # Preconditions
//
//   - NewBuffer and Resize panic unless 0 <= count <= capacity.
//   - DecreaseCountByOne needs Count >= 1, DecreaseCountByAmount needs
//     0 <= n <= Count. Violations panic with a runtime bounds error.
//   - Get and Set panic with *IndexError outside [0, Count).
//
// # Thread Safety
//
// Neither Buffer nor List is safe for concurrent use. Callers that share one
// across goroutines must synchronize externally.
//
// # Clear and ResetCount
//
// Clear zeroes every live slot but keeps Count. ResetCount (List.Reset)
// drops Count to zero and keeps Capacity. List.Clear follows Buffer.Clear,
// so a cleared list still reports its old Count.
package rbuf
