package rectmorph

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// loggerPtr stores the package logger. Accessed atomically so that
// SetLogger can be called concurrently with engine construction.
var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	loggerPtr.Store(&l)
}

// SetLogger sets the logger new engines inherit. By default rectmorph
// produces no log output.
//
// Levels used:
//   - Debug: one event per public operation (parameters, step count).
//   - Trace: one event per elementary step (pattern, fast path).
//
// Example:
//
//	rectmorph.SetLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel))
func SetLogger(l zerolog.Logger) {
	loggerPtr.Store(&l)
}

// Logger returns the current package logger.
func Logger() zerolog.Logger {
	return *loggerPtr.Load()
}
