package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents a log level
type Level int

const (
	// DebugLevel logs are voluminous and usually disabled outside development
	DebugLevel Level = iota
	// InfoLevel is the default logging priority
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review
	WarnLevel
	// ErrorLevel logs are high-priority
	ErrorLevel
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is a key-value pair for structured logging
type Field struct {
	Key   string
	Value any
}

// Logger is the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With creates a child logger with the given fields pre-set
	With(fields ...Field) Logger
	SetLevel(level Level)
}

// entry is the JSON wire format of one log line
type entry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger implements Logger with one JSON object per line
type JSONLogger struct {
	writer io.Writer
	level  Level
	fields []Field
	mu     sync.Mutex
}

// NewJSONLogger creates a new JSON logger
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	return &JSONLogger{writer: writer, level: level}
}

func (l *JSONLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var fieldMap map[string]any
	if len(l.fields)+len(fields) > 0 {
		fieldMap = make(map[string]any, len(l.fields)+len(fields))
		for _, f := range l.fields {
			fieldMap[f.Key] = f.Value
		}
		for _, f := range fields {
			fieldMap[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
		Fields:  fieldMap,
	})
	if err != nil {
		// Fall back to plain text if a field value refuses to marshal
		fmt.Fprintf(l.writer, "[ERROR] failed to marshal log entry: %v\n", err)
		return
	}

	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// Debug logs a debug-level message
func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }

// Info logs an info-level message
func (l *JSONLogger) Info(msg string, fields ...Field) { l.log(InfoLevel, msg, fields...) }

// Warn logs a warning-level message
func (l *JSONLogger) Warn(msg string, fields ...Field) { l.log(WarnLevel, msg, fields...) }

// Error logs an error-level message
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

// With creates a child logger with the given fields pre-set
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &JSONLogger{
		writer: l.writer,
		level:  l.level,
		fields: newFields,
	}
}

// SetLevel sets the minimum log level
func (l *JSONLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// NopLogger is a logger that does nothing (useful for testing)
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (n NopLogger) With(fields ...Field) Logger     { return n }
func (NopLogger) SetLevel(level Level)              {}

// NewNopLogger creates a logger that discards all output
func NewNopLogger() Logger {
	return NopLogger{}
}

var (
	defaultLogger Logger
	once          sync.Once
)

// DefaultLogger returns a process-wide logger writing JSON to stderr.
// LOG_LEVEL in the environment selects the minimum level.
func DefaultLogger() Logger {
	once.Do(func() {
		level := InfoLevel
		if s := os.Getenv("LOG_LEVEL"); s != "" {
			level = ParseLevel(s)
		}
		defaultLogger = NewJSONLogger(os.Stderr, level)
	})
	return defaultLogger
}

// TimedOperation helps measure operation duration
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// End logs the operation with its duration
func (t *TimedOperation) End() {
	t.logger.Info(t.msg, append(t.fields, Latency(time.Since(t.start)))...)
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) {
	t.logger.Error(t.msg, append(t.fields, Latency(time.Since(t.start)), Error(err))...)
}
