// Package log provides structured logging for the isocal command.
//
// Logs are written to stderr so command output on stdout stays parseable.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helixml/isocal/internal/config"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for logging.
const (
	CommandKey ContextKey = "command"
	InputKey   ContextKey = "input"
)

// Logger wraps slog.Logger with convenience methods.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger writing to stderr based on configuration.
// Colour is disabled when NO_COLOR is set.
func NewLogger(cfg config.AppConfig) *Logger {
	return newLogger(os.Stderr, cfg.LogFormat(), cfg.LogLevel(), os.Getenv("NO_COLOR") == "")
}

// NewLoggerWithWriter creates a Logger that writes uncoloured output to w.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	return newLogger(w, format, level, false)
}

func newLogger(w io.Writer, format config.LogFormat, level string, color bool) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newTerminalHandler(w, opts, color)
	}
	return &Logger{logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a new Logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// WithContext returns a logger carrying the command and input stored in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	attrs := make([]any, 0, 4)

	if cmd := Command(ctx); cmd != "" {
		attrs = append(attrs, string(CommandKey), cmd)
	}
	if input := Input(ctx); input != "" {
		attrs = append(attrs, string(InputKey), input)
	}

	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// DebugContext logs at debug level with context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Debug(msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// ErrorContext logs at error level with context.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Error(msg, args...)
}

// WithCommand stores the name of the running command in ctx.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, CommandKey, name)
}

// WithInput stores the raw command input in ctx.
func WithInput(ctx context.Context, input string) context.Context {
	return context.WithValue(ctx, InputKey, input)
}

// Command extracts the command name from context.
func Command(ctx context.Context) string {
	if name, ok := ctx.Value(CommandKey).(string); ok {
		return name
	}
	return ""
}

// Input extracts the command input from context.
func Input(ctx context.Context) string {
	if input, ok := ctx.Value(InputKey).(string); ok {
		return input
	}
	return ""
}

var defaultLogger = newLogger(os.Stderr, config.LogFormatPretty, config.DefaultLogLevel, false)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// Configure sets up logging based on configuration and installs it as the
// package and slog default.
func Configure(cfg config.AppConfig) *Logger {
	l := NewLogger(cfg)
	defaultLogger = l
	slog.SetDefault(l.logger)
	return l
}
