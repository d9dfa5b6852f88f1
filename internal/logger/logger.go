package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to stderr at the given level
// ("debug", "info", "warn" or "error").
// Development loggers use the console encoder, others emit JSON.
func New(level string, development bool) (*zap.Logger, error) {
	return NewWithWriter(os.Stderr, level, development)
}

// NewWithWriter is New with an explicit sink.
func NewWithWriter(w io.Writer, level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	var encoder zapcore.Encoder
	if development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core), nil
}

// NewTest returns a debug-level console logger on stdout.
func NewTest() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// Sync flushes l, warning through l itself if that fails.
func Sync(l *zap.Logger) {
	if err := l.Sync(); err != nil {
		l.Warn("failed to sync logger", zap.Error(err))
	}
}
