package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTestLogger returns a debug-level console logger writing to stdout.
// The returned function flushes it.
func NewTestLogger() (*zap.Logger, func()) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	logger := zap.New(consoleCore)
	return logger, func() {
		_ = logger.Sync()
	}
}
