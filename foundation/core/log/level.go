// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels, their textual forms and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-03-02 v0.2.0: Dropped the audit level, table driven names

package log

import (
	"strings"
)

// Level orders log messages by importance. Higher is more important.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelFatal terminates the program after writing
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levelTable = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
}

func (l Level) info() (levelInfo, bool) {
	if l < 0 || int(l) >= len(levelTable) {
		return levelInfo{}, false
	}
	return levelTable[l], true
}

func (l Level) String() string {
	if li, ok := l.info(); ok {
		return li.name
	}
	return "unknown"
}

// ShortString is the three letter tag used by the text formatters.
func (l Level) ShortString() string {
	if li, ok := l.info(); ok {
		return li.short
	}
	return "???"
}

// Color returns the ANSI escape for console output.
func (l Level) Color() string {
	if li, ok := l.info(); ok {
		return li.color
	}
	return "\033[0m"
}

// ShouldLog reports whether l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts level names, their short tags and a few aliases in
// any case. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for i, li := range levelTable {
		if s == li.name || strings.ToLower(li.short) == s {
			return Level(i), nil
		}
		for _, a := range li.aliases {
			if s == a {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a log setting that could not be parsed.
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels lists the levels in ascending order.
func AllLevels() []Level {
	levels := make([]Level, len(levelTable))
	for i := range levelTable {
		levels[i] = Level(i)
	}
	return levels
}

// DefaultLevel is the level of a logger built without configuration.
func DefaultLevel() Level {
	return LevelInfo
}
