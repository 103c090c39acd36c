package mallocbuf

import (
	"unsafe"

	"github.com/SSheldon/malloc-buf-go/internal/bindings"
)

// Deallocator releases a single foreign allocation. An implementation must
// be the exact counterpart of whatever allocator produced the addresses
// handed to the wrapper constructors; mismatched pairs corrupt the foreign
// heap.
type Deallocator interface {
	Free(ptr unsafe.Pointer)
}

// DeallocatorFunc adapts a function to the Deallocator interface.
type DeallocatorFunc func(ptr unsafe.Pointer)

// Free calls f(ptr).
func (f DeallocatorFunc) Free(ptr unsafe.Pointer) { f(ptr) }

// CHeap releases allocations back to the C heap with free(3). It is the
// default deallocator used by NewBuffer and NewCString.
//
// In builds without cgo the underlying call is a no-op; check Available when
// the program must know whether the C heap is actually reachable.
var CHeap Deallocator = DeallocatorFunc(bindings.Free)

// Available reports whether the C heap bindings are linked into this binary.
func Available() bool { return bindings.Available() }
