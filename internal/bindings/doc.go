// Package bindings is the only package in this module that imports "C".
//
// It exposes the C heap entry points needed by the owned wrappers: Free,
// which releases a malloc'd allocation, and a handful of allocation helpers
// used by cgo-enabled tests and examples to produce genuinely foreign
// memory to wrap.
//
// The package compiles in two flavors. With cgo enabled (and not on
// Windows), the calls go straight to the C runtime. Without cgo the stub
// variant keeps the module compiling: Free becomes a no-op and the
// allocation helpers report ErrCGONotEnabled, so pure-Go builds and tests
// that rely on a mock deallocator still work.
package bindings
