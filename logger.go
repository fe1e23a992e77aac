package curveviz

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger routes curveviz diagnostics, including those of the render and
// timeline packages, to l. A nil l discards them, which is the default.
//
// Debug records cover sample rebuilds and clip changes; warnings cover
// fallbacks such as an invalid frame rate, a clamped resolution or
// out-of-order color channels.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
