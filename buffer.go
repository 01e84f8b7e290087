package rbuf

// Buffer is a resizable buffer whose live Count is tracked separately from
// its Capacity. The zero value is an empty buffer ready for Resize.
//
// A Buffer is a value: copying one copies the handle, not the storage, and
// both copies then share slots. Keep a single owner per storage.
type Buffer[T any] struct {
	storage []T  // len(storage) is the capacity
	count   int  // live prefix, 0 <= count <= len(storage)
	scalar  bool // T holds no pointers, dropped slots need no clearing
}

// NewBuffer returns a buffer over exactly capacity slots with count of them
// live. The live slots start out zeroed. It panics unless
// 0 <= count <= capacity.
func NewBuffer[T any](capacity, count int) Buffer[T] {
	checkSizes(capacity, count)
	return Buffer[T]{
		storage: allocStorage[T](capacity),
		count:   count,
		scalar:  isScalar[T](),
	}
}

// Count returns the number of live slots.
func (b *Buffer[T]) Count() int {
	return b.count
}

// Capacity returns the number of slots in the backing storage.
func (b *Buffer[T]) Capacity() int {
	return len(b.storage)
}

// IncreaseCountByOne exposes one more slot at the end of the live range.
// It reports false, leaving the buffer unchanged, when the buffer is full.
// The new slot is not written; callers set it right after.
func (b *Buffer[T]) IncreaseCountByOne() bool {
	if b.count == len(b.storage) {
		return false
	}
	*b = Buffer[T]{storage: b.storage, count: b.count + 1, scalar: b.scalar}
	return true
}

// IncreaseCountByAmount exposes n more slots. It reports false, leaving the
// buffer unchanged, when n is negative or larger than the free capacity.
func (b *Buffer[T]) IncreaseCountByAmount(n int) bool {
	if n < 0 || n > len(b.storage)-b.count {
		return false
	}
	*b = Buffer[T]{storage: b.storage, count: b.count + n, scalar: b.scalar}
	return true
}

// DecreaseCountByOne zeroes the last live slot and drops it from the live
// range. The buffer must not be empty.
func (b *Buffer[T]) DecreaseCountByOne() {
	n := b.count - 1
	var zero T
	b.storage[n] = zero
	*b = Buffer[T]{storage: b.storage, count: n, scalar: b.scalar}
}

// DecreaseCountByAmount drops the last n live slots. Requires 0 <= n <= Count.
// Dropped slots are zeroed unless T is pointer-free.
func (b *Buffer[T]) DecreaseCountByAmount(n int) {
	next := b.count - n
	dropped := b.storage[next:b.count]
	if !b.scalar {
		clear(dropped)
	}
	*b = Buffer[T]{storage: b.storage, count: next, scalar: b.scalar}
}

// ResetCount drops every live slot. Capacity is unchanged.
func (b *Buffer[T]) ResetCount() {
	if !b.scalar {
		clear(b.storage[:b.count])
	}
	*b = Buffer[T]{storage: b.storage, count: 0, scalar: b.scalar}
}

// Resize moves the buffer onto fresh storage of newCapacity slots with
// newCount live, carrying over the first min(Count, newCount) values.
// It panics unless 0 <= newCount <= newCapacity.
func (b *Buffer[T]) Resize(newCapacity, newCount int) {
	checkSizes(newCapacity, newCount)
	storage := allocStorage[T](newCapacity)
	copy(storage, b.storage[:min(b.count, newCount)])
	*b = Buffer[T]{storage: storage, count: newCount, scalar: isScalar[T]()}
}

// Get returns the value at index i. It panics with *IndexError unless
// 0 <= i < Count.
func (b *Buffer[T]) Get(i int) T {
	if uint(i) >= uint(b.count) {
		panic(&IndexError{Index: i, Count: b.count})
	}
	return *slotAt(b.storage, i)
}

// Set stores v at index i. It panics with *IndexError unless 0 <= i < Count.
func (b *Buffer[T]) Set(i int, v T) {
	if uint(i) >= uint(b.count) {
		panic(&IndexError{Index: i, Count: b.count})
	}
	*slotAt(b.storage, i) = v
}

// Clear zeroes every live slot in place. Count is unchanged.
func (b *Buffer[T]) Clear() {
	clear(b.storage[:b.count])
}

// Live returns the live range as a slice. Its capacity is capped at Count,
// so appending to it copies instead of writing into reserved slots.
func (b *Buffer[T]) Live() []T {
	return b.storage[:b.count:b.count]
}

func checkSizes(capacity, count int) {
	if capacity < 0 {
		panic("rbuf: negative capacity")
	}
	if count < 0 || count > capacity {
		panic("rbuf: count out of range [0, capacity]")
	}
}
