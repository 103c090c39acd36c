package mallocbuf

import (
	"sync"

	"github.com/SSheldon/malloc-buf-go/pkg/mallocbuf/logging"
)

var (
	loggerMu sync.RWMutex
	logger   logging.Logger = logging.New(nil)
)

// SetLogger installs the logger used for package diagnostics. The only
// emission point is the finalizer path, which flags wrappers that were
// reclaimed by the garbage collector without an explicit Free. Passing nil
// restores the slog default.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// getLogger is safe to call from finalizer goroutines.
func getLogger() logging.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
