// Package mockalloc provides an in-memory allocator for testing and
// examples.
//
// Heap implements the mallocbuf.Deallocator interface over plain Go memory,
// allowing ownership tests to run without cgo or a real foreign allocator.
// Every Free call is counted per address, and invalid frees (nil, unknown,
// or double) are recorded instead of crashing, so tests can assert the
// exactly-once release contract directly.
//
// # Usage
//
//	heap := mockalloc.New()
//	ptr := heap.Alloc([]byte{1, 2, 3, 4})
//
//	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 4, heap)
//	// ... use buf.Bytes() ...
//	buf.Free()
//
//	if heap.FreeCount(ptr) != 1 {
//	    // release contract violated
//	}
//
// # Limitations
//
// Mockalloc is designed for tests and examples only. Addresses point into
// the Go heap, pinned by the Heap's own registry; they are not valid C heap
// addresses and must never be passed to free(3) or to wrappers using the
// default C heap deallocator.
package mockalloc
