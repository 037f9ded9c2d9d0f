package slog

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs"
)

type Logger struct {
	logger *slog.Logger
}

func New(level slog.Level) *Logger {
	return NewWithWriter(os.Stdout, level, false)
}

func NewJSON(level slog.Level) *Logger {
	return NewWithWriter(os.Stdout, level, true)
}

func NewWithWriter(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		logger: slog.New(handler),
	}
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *Logger) With(args ...any) logs.Logger {
	return &Logger{
		logger: l.logger.With(args...),
	}
}

var _ logs.Logger = (*Logger)(nil)
