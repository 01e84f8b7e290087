package rbuf

import "iter"

// MinGrowCapacity is the smallest capacity a List grows to from empty.
const MinGrowCapacity = 4

// List is a growable sequence backed by a single Buffer. Capacity doubles
// when an append does not fit. The zero value is an empty list.
type List[T any] struct {
	buf Buffer[T]
}

// NewList creates a list with room for capacity items.
// If capacity <= 0, the list starts with empty storage.
func NewList[T any](capacity int) *List[T] {
	return &List[T]{buf: NewBuffer[T](max(capacity, 0), 0)}
}

// Append adds item at the end of the list.
func (l *List[T]) Append(item T) {
	if l.buf.Count() == l.buf.Capacity() {
		l.buf.Resize(max(l.buf.Capacity()*2, MinGrowCapacity), l.buf.Count())
	}
	l.buf.IncreaseCountByOne()
	l.buf.Set(l.buf.Count()-1, item)
}

// AppendSlice adds items at the end of the list, growing at most once.
func (l *List[T]) AppendSlice(items ...T) {
	if len(items) == 0 {
		return
	}
	count := l.buf.Count()
	if !l.buf.IncreaseCountByAmount(len(items)) {
		l.buf.Resize(max(l.buf.Capacity()*2, count+len(items), MinGrowCapacity), count)
		l.buf.IncreaseCountByAmount(len(items))
	}
	copy(l.buf.Live()[count:], items)
}

// Get returns the item at index i. It panics with *IndexError unless
// 0 <= i < Count.
func (l *List[T]) Get(i int) T {
	return l.buf.Get(i)
}

// Set replaces the item at index i. It panics with *IndexError unless
// 0 <= i < Count.
func (l *List[T]) Set(i int, v T) {
	l.buf.Set(i, v)
}

// Pop removes and returns the last item. It reports false on an empty list.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	n := l.buf.Count()
	if n == 0 {
		return zero, false
	}
	item := l.buf.Get(n - 1)
	l.buf.DecreaseCountByOne()
	return item, true
}

// Truncate keeps the first n items. It panics unless 0 <= n <= Count.
func (l *List[T]) Truncate(n int) {
	if n < 0 || n > l.buf.Count() {
		panic("rbuf: truncate length out of range")
	}
	l.buf.DecreaseCountByAmount(l.buf.Count() - n)
}

// Clear zeroes every item but keeps Count. Use Reset to empty the list.
func (l *List[T]) Clear() {
	l.buf.Clear()
}

// Reset empties the list and keeps its capacity for reuse.
func (l *List[T]) Reset() {
	l.buf.ResetCount()
}

// Count returns the number of items.
func (l *List[T]) Count() int {
	return l.buf.Count()
}

// Capacity returns the number of items the list holds before growing.
func (l *List[T]) Capacity() int {
	return l.buf.Capacity()
}

// Slice returns the items as a slice sharing the list's storage. It is valid
// until the next call that grows or shrinks the list.
func (l *List[T]) Slice() []T {
	return l.buf.Live()
}

// All iterates over index, item pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.buf.Count(); i++ {
			if !yield(i, l.buf.Get(i)) {
				return
			}
		}
	}
}

// Metrics returns a snapshot of the backing buffer's sizes.
func (l *List[T]) Metrics() Metrics {
	return l.buf.Metrics()
}
