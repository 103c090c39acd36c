// Package mallocbuf provides owned wrappers for memory allocated by a
// foreign allocator, typically the C heap reached through malloc/free.
//
// Foreign interop boundaries routinely hand back buffers whose ownership the
// caller must take: the address must be freed exactly once with the matching
// deallocator, and reads must stay within the declared length. The types in
// this package take that ownership at construction, expose the memory as
// read-only views, and release it exactly once via Free (with a finalizer as
// a safety net for abandoned wrappers).
//
// Buffer wraps a region of known length; CString wraps a NUL-terminated
// sequence that is validated as UTF-8 before ownership is taken. Both reject
// malformed inputs at construction: a rejected constructor never takes
// ownership and never frees, so the caller keeps responsibility for the raw
// memory.
//
// The default deallocator is the C heap (free(3)), reached through
// internal/bindings so that all cgo stays isolated in one package. Callers
// whose memory comes from a different allocator supply their own Deallocator
// via the WithDeallocator constructors; tests use mockalloc.Heap the same
// way.
package mallocbuf
