//go:build !cgo || windows

package bindings

import "unsafe"

// Stub implementations for non-CGO builds or Windows. These keep the module
// compiling; the allocation helpers report ErrCGONotEnabled and Free is a
// no-op, so callers must pair wrappers with their own Deallocator.

// Available reports whether the C heap is reachable in this build.
func Available() bool { return false }

// Free is a no-op without cgo; there is no C heap to release into.
func Free(unsafe.Pointer) {}

func Malloc(int) (unsafe.Pointer, error) {
	return nil, ErrCGONotEnabled
}

func MallocBytes([]byte) (unsafe.Pointer, error) {
	return nil, ErrCGONotEnabled
}

func MallocString(string) (unsafe.Pointer, error) {
	return nil, ErrCGONotEnabled
}
