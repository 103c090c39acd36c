package mallocbuf

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"
)

// Buffer owns a contiguous foreign allocation of a known length and frees
// it exactly once. The address is treated as opaque: it is only used to
// build read-only views and, on release, to make the single deallocation
// call.
//
// A zero-length Buffer may legally wrap a null or sentinel address; nothing
// is ever read from it and Free never issues a deallocation call for it.
//
// Concurrency safety:
//   - Read-only methods are safe to call concurrently.
//   - Calling Free while another goroutine is using the Buffer or a view
//     obtained from Bytes is unsafe and will cause use-after-free errors.
//     The caller must ensure exclusive ownership during Free.
type Buffer struct {
	ptr      unsafe.Pointer
	n        int
	dealloc  Deallocator
	released bool
}

// NewBuffer wraps a C heap allocation of n bytes at ptr and takes ownership
// of it. The region must genuinely contain at least n readable bytes; this
// precondition is supplied by the caller and not re-verified.
//
// NewBuffer returns ErrNullPointer, taking no ownership and freeing nothing,
// when n > 0 and ptr is nil. A zero-length request succeeds for any ptr,
// including nil.
func NewBuffer(ptr unsafe.Pointer, n int) (*Buffer, error) {
	return NewBufferWithDeallocator(ptr, n, CHeap)
}

// NewBufferWithDeallocator is NewBuffer for memory that did not come from
// the C heap: d must be the counterpart of the allocator that produced ptr.
func NewBufferWithDeallocator(ptr unsafe.Pointer, n int, d Deallocator) (*Buffer, error) {
	if d == nil {
		return nil, ErrNilDeallocator
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if n > 0 && ptr == nil {
		return nil, fmt.Errorf("%w: buffer of length %d", ErrNullPointer, n)
	}

	b := &Buffer{ptr: ptr, n: n, dealloc: d}
	runtime.SetFinalizer(b, (*Buffer).finalize)
	return b, nil
}

// Bytes returns a read-only view of exactly Len bytes of the wrapped
// memory, without copying. The view aliases the foreign allocation: it must
// not be mutated and must not be retained past the Buffer's Free or last
// reference. Returns nil when the Buffer is empty or already released.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.released || b.n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.n)
}

// CloneBytes returns a defensive copy of the wrapped memory. The copy is
// ordinary Go memory and stays valid after Free.
func (b *Buffer) CloneBytes() []byte {
	view := b.Bytes()
	if view == nil {
		return nil
	}
	out := make([]byte, len(view))
	copy(out, view)
	runtime.KeepAlive(b)
	return out
}

// Len returns the wrapped length in bytes, or 0 once the Buffer has been
// released.
func (b *Buffer) Len() int {
	if b == nil || b.released {
		return 0
	}
	return b.n
}

// Zeroize overwrites the wrapped bytes with zeros. It does not release the
// memory. Useful before Free when the buffer held sensitive data.
func (b *Buffer) Zeroize() {
	buf := b.Bytes()
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(b)
}

// Free releases the foreign memory exactly once. Zero-length Buffers never
// trigger a deallocation call, even when the address is non-nil: an empty
// wrapper is not required to carry a freeable address. Free is idempotent;
// second and later calls are no-ops.
func (b *Buffer) Free() {
	if b == nil || b.released {
		return
	}
	b.released = true
	runtime.SetFinalizer(b, nil)
	if b.n > 0 {
		b.dealloc.Free(b.ptr)
	}
	b.ptr = nil
}

func (b *Buffer) finalize() {
	if b.released {
		return
	}
	if b.n > 0 {
		getLogger().Debug(context.Background(),
			"mallocbuf: buffer reclaimed by finalizer without explicit Free",
			"len", b.n)
	}
	b.Free()
}

// ViewAs reinterprets the buffer contents as a slice of T, in the machine's
// native layout. The byte length must be a whole multiple of T's size;
// otherwise, or when the Buffer is empty or released, ViewAs returns nil.
// The returned slice is a view with the same aliasing and lifetime rules as
// Bytes.
func ViewAs[T any](b *Buffer) []T {
	if b == nil || b.released || b.n == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 || b.n%size != 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.ptr), b.n/size)
}
