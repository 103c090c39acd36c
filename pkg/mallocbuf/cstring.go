package mallocbuf

import (
	"context"
	"runtime"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// CString owns a NUL-terminated foreign string validated as UTF-8 at
// construction, and frees it exactly once. The address is non-nil for the
// whole owned lifetime; even an empty string owns the allocation holding
// its terminator, so Free always makes the deallocation call.
//
// The same concurrency rules as Buffer apply: views must not outlive the
// wrapper and Free requires exclusive ownership.
type CString struct {
	ptr      unsafe.Pointer
	n        int // bytes before the terminator
	dealloc  Deallocator
	released bool
}

// NewCString wraps a NUL-terminated C heap string at ptr and takes
// ownership of it. It scans forward from ptr for the terminator, so the
// sequence must genuinely be NUL-terminated.
//
// NewCString returns ErrNullPointer when ptr is nil and ErrInvalidEncoding
// when the bytes before the terminator are not valid UTF-8. On either
// rejection no ownership is taken and nothing is freed; the caller keeps
// responsibility for the raw memory.
func NewCString(ptr unsafe.Pointer) (*CString, error) {
	return NewCStringWithDeallocator(ptr, CHeap)
}

// NewCStringWithDeallocator is NewCString for memory that did not come from
// the C heap: d must be the counterpart of the allocator that produced ptr.
func NewCStringWithDeallocator(ptr unsafe.Pointer, d Deallocator) (*CString, error) {
	if d == nil {
		return nil, ErrNilDeallocator
	}
	if ptr == nil {
		return nil, ErrNullPointer
	}

	n := cstrlen(ptr)
	if n > 0 && !utf8.Valid(unsafe.Slice((*byte)(ptr), n)) {
		return nil, ErrInvalidEncoding
	}

	s := &CString{ptr: ptr, n: n, dealloc: d}
	runtime.SetFinalizer(s, (*CString).finalize)
	return s, nil
}

// cstrlen walks the bytes at ptr until the first NUL and returns the count
// of preceding bytes. ptr must point at a NUL-terminated sequence.
func cstrlen(ptr unsafe.Pointer) int {
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return n
}

// String returns a read-only view of the text before the terminator,
// without copying. The string aliases the foreign allocation and must not
// be retained past the CString's Free or last reference. Returns "" once
// released.
func (s *CString) String() string {
	if s == nil || s.released || s.n == 0 {
		return ""
	}
	return unsafe.String((*byte)(s.ptr), s.n)
}

// CloneString returns a defensive copy of the text. The copy is ordinary Go
// memory and stays valid after Free.
func (s *CString) CloneString() string {
	out := strings.Clone(s.String())
	runtime.KeepAlive(s)
	return out
}

// Len returns the number of bytes before the terminator, or 0 once the
// CString has been released.
func (s *CString) Len() int {
	if s == nil || s.released {
		return 0
	}
	return s.n
}

// Free releases the foreign memory exactly once. The address is non-nil by
// construction invariant, so there is no zero-length special case: the
// terminator byte itself is an allocation that must be returned. Free is
// idempotent; second and later calls are no-ops.
func (s *CString) Free() {
	if s == nil || s.released {
		return
	}
	s.released = true
	runtime.SetFinalizer(s, nil)
	s.dealloc.Free(s.ptr)
	s.ptr = nil
}

func (s *CString) finalize() {
	if s.released {
		return
	}
	getLogger().Debug(context.Background(),
		"mallocbuf: C string reclaimed by finalizer without explicit Free",
		"len", s.n)
	s.Free()
}
