// File: regex_test.go
// Title: Unit Tests for Pattern Operations
// Description: Tests the regexp backed Matcher, its compiled-pattern cache
//              under concurrent use and the Value methods that delegate
//              to a Matcher.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package stringx

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

func TestRegexReplace(t *testing.T) {
	tests := []struct {
		input    string
		pattern  string
		repl     string
		expected string
	}{
		{"", "", "", ""},
		{"foo", "f[o]+", "bar", "bar"},
		{"foo bar", "f(o)o", `\1`, "o bar"},
		{"foo bar", `(?i)f[O]+\s`, "", "bar"},
		{"bar", "[[:alpha:]]{3}", "foo", "foo"},
		{"fòô ", `f[òô]+\s`, "bàř", "bàř"},
		{"fò", "(ò)", `\1ô`, "fòô"},
		{"bàř", "[[:alpha:]]{3}", "fòô", "fòô"},
		{"a  b c", "[[:space:]]+", "_", "a_b_c"},
		{"2025-03-02", `(\d+)-(\d+)-(\d+)`, "$3.$2.$1", "02.03.2025"},
	}

	for _, tt := range tests {
		got, err := New(tt.input).RegexReplace(tt.pattern, tt.repl, nil)
		if err != nil {
			t.Fatalf("RegexReplace(%q, %q, %q) failed: %v", tt.input, tt.pattern, tt.repl, err)
		}
		if got.String() != tt.expected {
			t.Errorf("RegexReplace(%q, %q, %q) = %q; want %q", tt.input, tt.pattern, tt.repl, got, tt.expected)
		}
	}
}

func TestInvalidPattern(t *testing.T) {
	v := New("foo")

	_, err := v.RegexReplace("(", "", nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
		t.Errorf("RegexReplace error = %v; want code %s", err, mdwerror.CodeInvalidPattern)
	}

	_, err = v.Matches("[a-", nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
		t.Errorf("Matches error = %v; want code %s", err, mdwerror.CodeInvalidPattern)
	}

	_, err = v.SplitPattern("*", 0, nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
		t.Errorf("SplitPattern error = %v; want code %s", err, mdwerror.CodeInvalidPattern)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		input    string
		pattern  string
		expected bool
	}{
		{"foo bar", "^foo", true},
		{"foo bar", "^bar", false},
		{"fòô bàř", `\p{L}+\s\p{L}+`, true},
		{"fòô", "^[[:alpha:]]+$", true},
		{"fòô1", "^[[:alpha:]]+$", false},
	}

	for _, tt := range tests {
		got, err := New(tt.input).Matches(tt.pattern, nil)
		if err != nil {
			t.Fatalf("Matches(%q, %q) failed: %v", tt.input, tt.pattern, err)
		}
		if got != tt.expected {
			t.Errorf("Matches(%q, %q) = %v; want %v", tt.input, tt.pattern, got, tt.expected)
		}
	}
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		input    string
		pattern  string
		limit    int
		expected []string
	}{
		{"a1b22c", `\d+`, 0, []string{"a", "b", "c"}},
		{"a1b22c", `\d+`, 2, []string{"a", "b22c"}},
		{"a1b22c", `\d+`, -1, []string{"a", "b", "c"}},
		{"fòô, bàř,baz", `,\s*`, 0, []string{"fòô", "bàř", "baz"}},
	}

	for _, tt := range tests {
		parts, err := New(tt.input).SplitPattern(tt.pattern, tt.limit, nil)
		if err != nil {
			t.Fatalf("SplitPattern(%q, %q, %d) failed: %v", tt.input, tt.pattern, tt.limit, err)
		}
		if got := valueStrings(parts); !slices.Equal(got, tt.expected) {
			t.Errorf("SplitPattern(%q, %q, %d) = %q; want %q", tt.input, tt.pattern, tt.limit, got, tt.expected)
		}
	}
}

// recordingMatcher wraps a RegexpMatcher and records the patterns it sees.
type recordingMatcher struct {
	*RegexpMatcher
	patterns []string
}

func (m *recordingMatcher) MatchString(pattern, s string) (bool, error) {
	m.patterns = append(m.patterns, pattern)
	return m.RegexpMatcher.MatchString(pattern, s)
}

func TestCustomMatcher(t *testing.T) {
	m := &recordingMatcher{RegexpMatcher: NewRegexpMatcher()}

	ok, err := New("foo").Matches("o+", m)
	if err != nil || !ok {
		t.Fatalf("Matches with custom matcher = %v, %v; want true, nil", ok, err)
	}
	if !slices.Equal(m.patterns, []string{"o+"}) {
		t.Errorf("custom matcher saw %q; want [\"o+\"]", m.patterns)
	}
}

func TestRegexpMatcherCache(t *testing.T) {
	m := NewRegexpMatcher()
	patterns := []string{`\d+`, `[a-z]+`, `\s`, `^f`}

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := patterns[i%len(patterns)]
			if _, err := m.MatchString(p, fmt.Sprintf("foo %d", i)); err != nil {
				t.Errorf("MatchString(%q) failed: %v", p, err)
			}
		}(i)
	}
	wg.Wait()

	if got := m.CacheSize(); got != len(patterns) {
		t.Errorf("CacheSize() = %d; want %d", got, len(patterns))
	}

	if _, err := m.MatchString("(", "x"); err == nil {
		t.Error("MatchString accepted an invalid pattern")
	}
	if got := m.CacheSize(); got != len(patterns) {
		t.Errorf("invalid pattern was cached: CacheSize() = %d", got)
	}
}

func TestDefaultMatcher(t *testing.T) {
	if DefaultMatcher() != Matcher(defaultMatcher) {
		t.Error("DefaultMatcher() does not return the shared matcher")
	}
	if orDefault(nil) != Matcher(defaultMatcher) {
		t.Error("orDefault(nil) does not select the shared matcher")
	}
}
