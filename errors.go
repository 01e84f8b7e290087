package rbuf

import "fmt"

// IndexError is the panic value raised by Get and Set when the index falls
// outside the live range [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("rbuf: index %d out of range [0:%d)", e.Index, e.Count)
}
