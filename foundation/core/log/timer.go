// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on Stop.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with checkpoints
// - 2025-03-02 v0.2.0: Reduced to start, stop and stop-with-error

package log

import (
	"time"
)

// Timer measures one operation and logs its duration once.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer. A nil logger only measures.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithField attaches a field to the completion entry.
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" at debug level. Only the first call
// to Stop or StopWithError logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(LevelDebug, "completed", nil)
}

// StopWithError logs "<operation> failed" with err at error level.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, "failed", err)
}

func (t *Timer) finish(level Level, outcome string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	entry := NewEntry(level, t.operation+" "+outcome).WithFields(t.fields)
	if err != nil {
		entry.WithError(err)
	}
	entry.Duration = elapsed
	t.logger.write(entry)
	return elapsed
}
