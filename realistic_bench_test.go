package rbuf

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares List against builtin slices in the
// patterns it is meant for
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Build a list per request, reusing storage between requests
	b.Run("RequestScratch/List", func(b *testing.B) {
		l := NewList[int](0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				l.Append(j)
			}
			l.Reset()
		}
	})

	b.Run("RequestScratch/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s = append(s, j)
			}
			clear(s)
			s = s[:0]
		}
	})

	// Test 2: Pointer-bearing elements, dropped in bulk
	type node struct {
		ID   int64
		Next *node
	}

	b.Run("PointerTruncate/List", func(b *testing.B) {
		l := NewList[*node](256)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 200; j++ {
				l.Append(&node{ID: int64(j)})
			}
			l.Truncate(50)
			l.Reset()
		}
	})

	b.Run("PointerTruncate/Builtin", func(b *testing.B) {
		s := make([]*node, 0, 256)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 200; j++ {
				s = append(s, &node{ID: int64(j)})
			}
			clear(s[50:])
			s = s[:50]
			clear(s)
			s = s[:0]
		}
	})

	// Test 3: Scalar elements skip clearing on shrink
	b.Run("ScalarTruncate/List", func(b *testing.B) {
		l := NewList[float64](4096)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 4096; j++ {
				l.Append(float64(j))
			}
			l.Reset()
		}
	})

	// Test 4: GC with large reserved tails
	b.Run("ReservedTail/List", func(b *testing.B) {
		l := NewList[*node](1 << 16)
		l.Append(&node{})
		runtime.GC()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Append(&node{ID: int64(i)})
			l.Pop()
			if i%1000 == 999 {
				runtime.GC()
			}
		}
	})
}
