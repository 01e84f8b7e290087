package rbuf

import (
	"reflect"
	"unsafe"
)

// allocStorage returns n zeroed slots. A zero-length request still yields a
// non-nil slice so empty storage is distinguishable from no storage.
func allocStorage[T any](n int) []T {
	if n < 0 {
		panic("rbuf: negative capacity")
	}
	return make([]T, n)
}

// slotAt returns a pointer to s[i] without a bounds check.
// The caller must have checked i against the live count.
func slotAt[T any](s []T, i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(zero)))
}

// isScalar reports whether values of T contain no pointers the garbage
// collector would trace.
func isScalar[T any]() bool {
	return !hasPointers(reflect.TypeFor[T]())
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, String, Slice, Map, Chan, Func, Interface.
		return true
	}
}
