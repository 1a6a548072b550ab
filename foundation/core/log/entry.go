// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry and the Fields map used for
//              structured key-value context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured entries
// - 2025-03-02 v0.2.0: Removed request and user context, sorted field keys

package log

import (
	"maps"
	"slices"
	"time"
)

// Entry is one log record before formatting.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	// Logger is the name of the emitting logger, empty for the root logger
	Logger string

	Fields   Fields
	Error    error
	Duration time.Duration
}

// Fields carries structured context. Formatters print keys in sorted order.
type Fields map[string]interface{}

// Field is shorthand for a one-entry Fields.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err stores err under "error".
func Err(err error) Fields {
	return Field("error", err)
}

// Merge returns a new map; keys in other win.
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	maps.Copy(merged, f)
	maps.Copy(merged, other)
	return merged
}

func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// NewEntry stamps the current time.
func NewEntry(level Level, message string) *Entry {
	return &Entry{Timestamp: time.Now(), Level: level, Message: message, Fields: Fields{}}
}

// WithFields copies fields into the entry.
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields, len(fields))
	}
	maps.Copy(e.Fields, fields)
	return e
}

func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}
