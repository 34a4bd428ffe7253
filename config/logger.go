package config

import (
	"log/slog"
	"os"
)

// _Logger is the minimal logging surface available during startup, before the
// application logger is configured.
type _Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Logger returns a bootstrap logger at the configured logging level.
// Startup code (configuration loading, database init) logs through it.
func Logger() _Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(GetConfig().Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	return NewLogger(level)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a JSON log/slog backed logger at the given level.
func NewLogger(level slog.Level) _Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
