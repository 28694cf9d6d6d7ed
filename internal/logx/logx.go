// Package logx provides structured logging for the interpreter, adapted
// from the teacher's shoyu package: slog.Logger over a charmbracelet/log
// handler for readable console output. Unlike shoyu, there is no streaming
// callback (nothing here streams external process output) and no
// whimsical status-word theming — just plain structured fields.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// Level is the minimum severity to emit.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Config configures a Logger. Zero value applies sensible defaults.
type Config struct {
	Level  Level
	Output io.Writer
	Color  bool
}

// Logger wraps slog.Logger using charmbracelet/log as the handler.
type Logger struct {
	sl      *slog.Logger
	handler *log.Logger
}

// New creates a Logger. Missing Output defaults to os.Stdout; missing
// Level defaults to LevelInfo.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Level == "" {
		cfg.Level = LevelInfo
	}
	handler := log.NewWithOptions(cfg.Output, log.Options{
		Level:           convertLevel(cfg.Level),
		ReportTimestamp: true,
	})
	if !cfg.Color {
		handler.SetColorProfile(0)
	}
	return &Logger{sl: slog.New(handler), handler: handler}
}

func convertLevel(l Level) log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.sl.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.sl.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

// With returns a child logger carrying additional structured fields, e.g.
// logger.With("op", "rename", "identifier", "img1").
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.sl.With(args...), handler: l.handler}
}

// SetOutput redirects where logs are written.
func (l *Logger) SetOutput(w io.Writer) {
	l.handler.SetOutput(w)
}
