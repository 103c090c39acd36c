package mockalloc

import (
	"fmt"
	"sync"
	"unsafe"
)

// Heap is an in-memory allocator for tests. It hands out addresses backed
// by Go memory, pins the backing arrays for as long as the allocation is
// live, and counts every Free call per address. It implements
// mallocbuf.Deallocator.
//
// All methods are safe for concurrent use.
type Heap struct {
	mu     sync.Mutex
	live   map[unsafe.Pointer][]byte
	dead   map[unsafe.Pointer][]byte // freed allocations stay pinned so addresses are never reused
	frees  map[unsafe.Pointer]int
	misuse []string
}

// New returns an empty mock heap.
func New() *Heap {
	return &Heap{
		live:  make(map[unsafe.Pointer][]byte),
		dead:  make(map[unsafe.Pointer][]byte),
		frees: make(map[unsafe.Pointer]int),
	}
}

// Alloc copies data into a fresh allocation and returns its address. An
// empty input still yields a distinct, valid address so callers can model
// zero-length regions at a real location.
func (h *Heap) Alloc(data []byte) unsafe.Pointer {
	size := len(data)
	if size == 0 {
		size = 1
	}
	buf := make([]byte, size)
	copy(buf, data)

	ptr := unsafe.Pointer(&buf[0])
	h.mu.Lock()
	h.live[ptr] = buf
	h.mu.Unlock()
	return ptr
}

// CString copies s into a fresh NUL-terminated allocation and returns its
// address. s may carry arbitrary bytes, including invalid UTF-8, but must
// not contain an interior NUL.
func (h *Heap) CString(s string) unsafe.Pointer {
	return h.Alloc(append([]byte(s), 0))
}

// Free records a deallocation call for ptr and retires the allocation. The
// backing array stays pinned so the address is never handed out again by a
// later Alloc. Frees of nil, unknown, or already-freed addresses are
// recorded as misuse rather than panicking, so tests can assert on them.
func (h *Heap) Free(ptr unsafe.Pointer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ptr == nil {
		h.misuse = append(h.misuse, "free of nil address")
		return
	}
	buf, ok := h.live[ptr]
	if !ok {
		if h.frees[ptr] > 0 {
			h.frees[ptr]++
			h.misuse = append(h.misuse, fmt.Sprintf("double free of %p", ptr))
		} else {
			h.misuse = append(h.misuse, fmt.Sprintf("free of unknown address %p", ptr))
		}
		return
	}
	delete(h.live, ptr)
	h.dead[ptr] = buf
	h.frees[ptr]++
}

// FreeCount returns how many times ptr has been freed.
func (h *Heap) FreeCount(ptr unsafe.Pointer) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frees[ptr]
}

// TotalFrees returns the total number of Free calls across all addresses,
// misuse included.
func (h *Heap) TotalFrees() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	total := 0
	for _, n := range h.frees {
		total += n
	}
	return total
}

// LiveCount returns the number of allocations that have not been freed.
func (h *Heap) LiveCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

// Misuse returns descriptions of every invalid Free observed: nil, unknown,
// or double frees.
func (h *Heap) Misuse() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.misuse))
	copy(out, h.misuse)
	return out
}
