// Package logging provides a minimal logging facade for the mallocbuf
// wrappers.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is intentionally
// small to allow applications to provide custom implementations for testing
// or integration with existing logging systems.
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/SSheldon/malloc-buf-go/pkg/mallocbuf/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Usage
//
// The mallocbuf package only logs from its finalizer path, to flag owned
// buffers that were reclaimed by the garbage collector without an explicit
// Free. Install a logger with mallocbuf.SetLogger to surface those
// diagnostics:
//
//	mallocbuf.SetLogger(logging.New(nil))
package logging
