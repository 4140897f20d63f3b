package log

import (
	"github.com/sotte/pelper/effects"
	"github.com/sotte/pelper/timing"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// Sink adapts logger into an effects.Sink that writes every line at the given level.
// Unknown levels log at info.
func Sink(logger *zap.Logger, level LogLevel, fields ...zap.Field) effects.Sink {
	return func(line string) {
		logAt(logger, level, line, fields...)
	}
}

// ReportObserver logs every duration report with structured fields.
// Use it with timing.WithObserver.
func ReportObserver(logger *zap.Logger) func(timing.Report) {
	return func(r timing.Report) {
		logger.Info(r.Line(),
			zap.String("timer_id", r.ID),
			zap.String("message", r.Message),
			zap.Duration("elapsed", r.Elapsed),
			zap.Time("start", r.Span.Start()),
			zap.Time("end", r.Span.End()),
		)
	}
}

// ReturnLogger returns a pipeline step that logs the running value under msg
// and passes it on unchanged.
func ReturnLogger[T any](logger *zap.Logger, msg string) func(T) T {
	return effects.Tap(func(v T) {
		logger.Debug(msg, zap.Any("value", v))
	})
}

func logAt(logger *zap.Logger, level LogLevel, msg string, fields ...zap.Field) {
	switch level {
	case LogInfo:
		logger.Info(msg, fields...)
	case LogWarn:
		logger.Warn(msg, fields...)
	case LogError:
		logger.Error(msg, fields...)
	case LogDebug:
		logger.Debug(msg, fields...)
	default:
		logger.Info(msg, fields...)
	}
}
