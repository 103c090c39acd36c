//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Available reports whether the C heap is reachable in this build.
func Available() bool { return true }

// Free releases a C heap allocation. ptr must have been produced by the C
// allocator and must not be used afterwards. Free(nil) is a no-op, matching
// free(3).
func Free(ptr unsafe.Pointer) {
	C.free(ptr)
}

// Malloc allocates n uninitialized bytes on the C heap.
func Malloc(n int) (unsafe.Pointer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("mallocbuf/internal/bindings: invalid allocation size %d", n)
	}
	p := C.malloc(C.size_t(n))
	if p == nil {
		return nil, ErrOutOfMemory
	}
	return p, nil
}

// MallocBytes copies data into a fresh C heap allocation and returns its
// address. The caller owns the allocation.
func MallocBytes(data []byte) (unsafe.Pointer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("mallocbuf/internal/bindings: empty data")
	}
	p, err := Malloc(len(data))
	if err != nil {
		return nil, err
	}
	C.memcpy(p, unsafe.Pointer(&data[0]), C.size_t(len(data)))
	return p, nil
}

// MallocString copies s into a NUL-terminated string on the C heap. The
// caller owns the allocation.
func MallocString(s string) (unsafe.Pointer, error) {
	// C.CString allocates with malloc and appends the terminator.
	return unsafe.Pointer(C.CString(s)), nil
}
