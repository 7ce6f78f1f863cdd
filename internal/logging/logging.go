package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger defines minimal logging interface used across layers.
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, msg string, kv ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, msg string, kv ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, msg string, kv ...any)
	Errorf(ctx context.Context, format string, args ...any)
	With(kv ...any) Logger
}

type contextKey struct{}

var loggerKey contextKey

// WithLogger stores a logger in context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves a logger from context, returns the default logger if absent.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if v, ok := ctx.Value(loggerKey).(Logger); ok && v != nil {
			return v
		}
	}
	return defaultLogger
}

var defaultLogger Logger = &slogWrapper{logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))}

// New constructs a Logger of given format (json|text|human) and level writing to stderr.
// Lambda ships stderr to CloudWatch Logs, where json is the most useful format.
func New(format string, level slog.Leveler) (Logger, error) {
	return NewWithWriter(format, level, os.Stderr)
}

// NewWithWriter constructs a Logger of given format, level, and output writer.
func NewWithWriter(format string, level slog.Leveler, w io.Writer) (Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "json":
		return &slogWrapper{logger: slog.New(slog.NewJSONHandler(w, opts))}, nil
	case "text":
		return &slogWrapper{logger: slog.New(slog.NewTextHandler(w, opts))}, nil
	case "human":
		// Drop the time attribute; the terminal or the log service already stamps lines.
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
		return &slogWrapper{logger: slog.New(slog.NewTextHandler(w, opts))}, nil
	default:
		return nil, errors.New("unsupported log format: " + format)
	}
}

// ParseLevel converts DEBUG|INFO|WARN|ERROR (case-insensitive) into a slog level.
// An empty string yields INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level: %s", s)
	}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return &slogWrapper{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// slogWrapper adapts slog.Logger to Logger.
type slogWrapper struct{ logger *slog.Logger }

func (l *slogWrapper) Debug(ctx context.Context, msg string, kv ...any) {
	l.logger.DebugContext(ctx, msg, kv...)
}
func (l *slogWrapper) Debugf(ctx context.Context, format string, args ...any) {
	l.logger.DebugContext(ctx, fmt.Sprintf(format, args...))
}
func (l *slogWrapper) Info(ctx context.Context, msg string, kv ...any) {
	l.logger.InfoContext(ctx, msg, kv...)
}
func (l *slogWrapper) Infof(ctx context.Context, format string, args ...any) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}
func (l *slogWrapper) Warn(ctx context.Context, msg string, kv ...any) {
	l.logger.WarnContext(ctx, msg, kv...)
}
func (l *slogWrapper) Warnf(ctx context.Context, format string, args ...any) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}
func (l *slogWrapper) Error(ctx context.Context, msg string, kv ...any) {
	l.logger.ErrorContext(ctx, msg, kv...)
}
func (l *slogWrapper) Errorf(ctx context.Context, format string, args ...any) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogWrapper) With(kv ...any) Logger { return &slogWrapper{logger: l.logger.With(kv...)} }
