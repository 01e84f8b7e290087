package rbuf

import "unsafe"

// Metrics contains size information about a buffer.
type Metrics struct {
	Count         int     // Live slots
	Capacity      int     // Reserved slots
	Free          int     // Capacity - Count
	ElemSize      int     // Bytes per slot
	LiveBytes     int     // Bytes in the live prefix
	ReservedBytes int     // Bytes in the backing storage
	Utilization   float64 // Ratio of live to reserved slots (0.0-1.0)
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 if the buffer has no capacity.
func (b *Buffer[T]) Utilization() float64 {
	if len(b.storage) == 0 {
		return 0
	}
	return float64(b.count) / float64(len(b.storage))
}

// Metrics returns a snapshot of buffer statistics.
func (b *Buffer[T]) Metrics() Metrics {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	return Metrics{
		Count:         b.count,
		Capacity:      len(b.storage),
		Free:          len(b.storage) - b.count,
		ElemSize:      elem,
		LiveBytes:     b.count * elem,
		ReservedBytes: len(b.storage) * elem,
		Utilization:   b.Utilization(),
	}
}
