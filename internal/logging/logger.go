package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a structured logging key-value pair.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field content; any JSON-serializable value is accepted.
	Value any
}

// String creates a Field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a Field carrying an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
// It decouples components from the concrete logging backend so that
// tests can capture output and alternative backends can be swapped in.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional structured fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with an associated error and
	// optional structured fields. A nil err is permitted.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message at info level (standard-log compatibility).
	Printf(format string, args ...any)
	// Println logs its arguments at info level (standard-log compatibility).
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter creates a Logger backed by the given zerolog.Logger.
//
// Parameters:
//   - logger: The zerolog logger to adapt.
//
// Returns:
//   - *ZerologAdapter: The adapted logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a Logger writing JSON lines to the given writer, with
// every entry tagged with the given component name.
//
// Parameters:
//   - w: The destination writer.
//   - component: The component name added to every log entry.
//
// Returns:
//   - Logger: The configured logger.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates a Logger writing to stderr with timestamps.
// This is the logger used when no explicit destination is configured.
//
// Returns:
//   - Logger: The default logger.
func NewDefaultLogger() Logger {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &ZerologAdapter{logger: zl}
}

// applyFields attaches the given fields to a zerolog event, using typed
// setters where possible so numbers are emitted as JSON numbers.
func applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with an associated error.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments at info level, space-separated.
func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(fmt.Sprintln(args...))
}
