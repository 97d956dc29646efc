// Package logging provides structured JSON logging for resumate.
// All logs go to stderr so stdout stays free for piped render output
// (e.g. `resumate render - -o - > out.pdf`).
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"time"

	"github.com/foliotype/resumate/internal/core/usecases"
)

// Ensure Logger implements usecases.Logger interface.
var _ usecases.Logger = (*Logger)(nil)

// Level represents a log level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Logger provides structured JSON logging.
type Logger struct {
	level  Level
	fields map[string]any
	ctx    context.Context
}

// New creates a new logger with the given level.
func New(level Level) *Logger {
	return &Logger{
		level:  level,
		fields: make(map[string]any),
		ctx:    context.Background(),
	}
}

// WithContext returns a logger that includes the given context.
func (l *Logger) WithContext(ctx context.Context) usecases.Logger {
	return &Logger{
		level:  l.level,
		fields: copyFields(l.fields),
		ctx:    ctx,
	}
}

// WithFields returns a logger with additional structured fields.
func (l *Logger) WithFields(keysAndValues ...any) usecases.Logger {
	newLogger := &Logger{
		level:  l.level,
		fields: copyFields(l.fields),
		ctx:    l.ctx,
	}
	mergeKeysAndValues(newLogger.fields, keysAndValues)
	return newLogger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.level != LevelDebug {
		return
	}
	l.log(LevelDebug, msg, keysAndValues)
}

// Info logs an info message.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues)
}

// Error logs an error message.
func (l *Logger) Error(msg string, err error, keysAndValues ...any) {
	fields := parseKeysAndValues(keysAndValues)
	if err != nil {
		fields["error"] = err.Error()
	}
	l.logWithFields(LevelError, msg, fields)
}

func (l *Logger) log(level Level, message string, keysAndValues []any) {
	fields := parseKeysAndValues(keysAndValues)
	l.logWithFields(level, message, fields)
}

func (l *Logger) logWithFields(level Level, message string, fields map[string]any) {
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     level,
		"message":   message,
	}

	maps.Copy(entry, l.fields)
	maps.Copy(entry, fields)

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, `{"error":"failed to marshal log entry: %v"}`+"\n", err)
		return
	}

	fmt.Fprintf(os.Stderr, "%s\n", string(data))
}

// parseKeysAndValues converts variadic key-value pairs into a map.
// Keys must be strings; non-string keys are skipped.
func parseKeysAndValues(keysAndValues []any) map[string]any {
	fields := make(map[string]any)
	mergeKeysAndValues(fields, keysAndValues)
	return fields
}

func mergeKeysAndValues(fields map[string]any, keysAndValues []any) {
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
}

func copyFields(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	maps.Copy(dst, src)
	return dst
}

// global is the package-level logger used by code paths without an
// injected usecases.Logger, such as early CLI bootstrap before config load.
var global = New(LevelInfo)

// SetLevel sets the global log level.
func SetLevel(level Level) {
	global.level = level
}

// GetLogger returns the global logger.
func GetLogger() *Logger {
	return global
}
