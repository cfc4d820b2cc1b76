package preprocess

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the preprocess package's logger instance. It uses a
// no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the preprocess package's logger. Call this before
// running Pass1/Pass2 if you want its diagnostic traces.
func SetLogger(l *zap.Logger) {
	logger = l
}
