package bindings

import "errors"

var (
	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot reach the C allocator. Callers can use this to fall
	// back to a mock deallocator in tests.
	ErrCGONotEnabled = errors.New("mallocbuf/internal/bindings: cgo not enabled")

	// ErrOutOfMemory reports a failed C allocation in one of the test and
	// example helpers.
	ErrOutOfMemory = errors.New("mallocbuf/internal/bindings: C allocation failed")
)
