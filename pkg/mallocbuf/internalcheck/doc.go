// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static policy checks used internally by the
// malloc-buf-go module. It is not intended for external use and the API may
// change without notice.
//
// The checks enforce the module's isolation rules: cgo stays confined to
// internal/bindings (plus the cgo example), and unsafe pointer handling
// stays confined to the packages that own raw foreign addresses.
package internalcheck
