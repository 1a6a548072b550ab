// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, filtering and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package log

import (
	"errors"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		long  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			if got := tt.level.String(); got != tt.long {
				t.Errorf("String() = %q, want %q", got, tt.long)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %q, want %q", got, tt.short)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should log at info")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("info should log at info")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"trc", LevelTrace, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
			var perr *ParseError
			if tt.wantErr && !errors.As(err, &perr) {
				t.Errorf("ParseLevel(%q) error type = %T, want *ParseError", tt.input, err)
			}
		})
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()
	if len(levels) != 6 {
		t.Fatalf("len(AllLevels()) = %d, want 6", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("AllLevels() not ascending at %d", i)
		}
	}
}
