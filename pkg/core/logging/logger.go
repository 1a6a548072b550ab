// File: logger.go
// Title: Key/Value Logger
// Description: Wraps the foundation logger with key/value call sites for
//              command code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Verbosity switch and structured error logging

package logging

import (
	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// Logger wraps the foundation logger with key/value methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a Logger from cfg
func New(cfg LoggerConfig) (*Logger, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger, name: cfg.Name}, nil
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Named returns a child logger called "<name>.<sub>"
func (l *Logger) Named(sub string) *Logger {
	name := sub
	if l.name != "" {
		name = l.name + "." + sub
	}
	return &Logger{Logger: l.Logger.WithName(name), name: name}
}

// Verbose returns a logger at debug level when on, or l itself otherwise
func (l *Logger) Verbose(on bool) *Logger {
	if !on || l.IsLevelEnabled(mdwlog.LevelDebug) {
		return l
	}
	return &Logger{Logger: l.Logger.WithLevel(mdwlog.LevelDebug), name: l.name}
}

// With returns a logger that adds the key/value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.WithFields(toFields(keysAndValues...)), name: l.name}
}

// Debug logs a debug message with key/value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key/value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key/value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key/value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key/value pairs to mdwlog.Fields. Non-string keys and
// a trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
