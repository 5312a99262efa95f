// Package logging provides structured logging for go-pong.
// It wraps Go's standard slog package with match-scoped correlation IDs and
// redaction of sensitive attributes.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvLogLevel selects the minimum level: DEBUG, INFO, WARN or ERROR.
const EnvLogLevel = "PONG_LOG_LEVEL"

// Logger wraps slog.Logger to provide application-specific logging functionality
// with correlation ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger writing JSON to stdout.
// The log level is read from PONG_LOG_LEVEL and defaults to INFO.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout, getLogLevelFromEnv())
}

// NewLoggerWithWriter creates a JSON Logger writing to w at the given level.
func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: sanitizeAttributes,
	})
	return &Logger{slog.New(handler)}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	return NewLoggerWithWriter(io.Discard, slog.LevelError+1)
}

// LogWithContext logs a message with automatic correlation ID extraction from context.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context.
// If no correlation ID is provided, a new one will be generated.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

func getLogLevelFromEnv() slog.Level {
	levelStr := strings.ToUpper(os.Getenv(EnvLogLevel))
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// sanitizeAttributes masks attributes that look like credentials.
// Key identifiers ("key", "up_key") are game input and are logged as-is.
func sanitizeAttributes(groups []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)

	sensitiveKeys := []string{
		"password", "passwd", "pwd",
		"token", "auth", "authorization",
		"secret", "api_key", "private",
		"cookie", "session",
	}

	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return slog.Attr{
				Key:   a.Key,
				Value: slog.StringValue("[REDACTED]"),
			}
		}
	}

	return a
}

// WrapError wraps an error with additional context information.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
