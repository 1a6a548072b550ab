// File: regex.go
// Title: Regular Expression Matching
// Description: The default Matcher on top of regexp with POSIX class
//              translation and a shared compiled-pattern cache, and the
//              pattern operations of the value type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"sync"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

// posixClasses widens the bracket classes to their Unicode reading.
var posixClasses = strings.NewReplacer(
	"[:space:]", `\s\p{Z}\x{85}`,
	"[:alpha:]", `\p{L}`,
	"[:alnum:]", `\p{L}\p{N}`,
	"[:upper:]", `\p{Lu}`,
	"[:lower:]", `\p{Ll}`,
	"[:digit:]", `\p{Nd}`,
	"[:xdigit:]", `0-9A-Fa-f`,
	"[:punct:]", `\p{P}`,
)

// backrefs finds \1 style group references in replacement strings.
var backrefs = regexp.MustCompile(`\\(\d+)`)

// RegexpMatcher is a Matcher backed by regexp. Compiled patterns are
// cached; the cache is safe for concurrent use.
type RegexpMatcher struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

// NewRegexpMatcher creates a matcher with an empty cache.
func NewRegexpMatcher() *RegexpMatcher {
	return &RegexpMatcher{cache: make(map[string]*regexp.Regexp)}
}

var defaultMatcher = NewRegexpMatcher()

// DefaultMatcher returns the shared RegexpMatcher used when a nil Matcher
// is passed.
func DefaultMatcher() Matcher {
	return defaultMatcher
}

func (m *RegexpMatcher) compile(pattern string) (*regexp.Regexp, error) {
	m.mu.RLock()
	re, ok := m.cache[pattern]
	m.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(posixClasses.Replace(pattern))
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[pattern] = re
	m.mu.Unlock()
	return re, nil
}

// MatchString reports whether pattern matches anywhere in s.
func (m *RegexpMatcher) MatchString(pattern, s string) (bool, error) {
	re, err := m.compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// ReplaceAllString replaces every match. Both $1 and \1 refer to groups.
func (m *RegexpMatcher) ReplaceAllString(pattern, s, repl string) (string, error) {
	re, err := m.compile(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, backrefs.ReplaceAllString(repl, "$${${1}}")), nil
}

// Split cuts s around matches; n follows regexp.Regexp.Split.
func (m *RegexpMatcher) Split(pattern, s string, n int) ([]string, error) {
	re, err := m.compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.Split(s, n), nil
}

// CacheSize returns the number of compiled patterns held.
func (m *RegexpMatcher) CacheSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

func orDefault(m Matcher) Matcher {
	if m == nil {
		return defaultMatcher
	}
	return m
}

// RegexReplace replaces every match of pattern with repl. A pattern the
// matcher rejects fails with INVALID_PATTERN.
func (v Value) RegexReplace(pattern, repl string, m Matcher) (Value, error) {
	out, err := orDefault(m).ReplaceAllString(pattern, v.String(), repl)
	if err != nil {
		return Value{}, mdwerrors.InvalidPattern("RegexReplace", pattern, err)
	}
	return v.derive([]rune(out)), nil
}

// Matches reports whether pattern matches anywhere in the value.
func (v Value) Matches(pattern string, m Matcher) (bool, error) {
	ok, err := orDefault(m).MatchString(pattern, v.String())
	if err != nil {
		return false, mdwerrors.InvalidPattern("Matches", pattern, err)
	}
	return ok, nil
}

// SplitPattern cuts the value around matches of pattern. A positive limit
// keeps at most that many pieces, the last holding the unsplit rest.
func (v Value) SplitPattern(pattern string, limit int, m Matcher) ([]Value, error) {
	n := -1
	if limit > 0 {
		n = limit
	}
	parts, err := orDefault(m).Split(pattern, v.String(), n)
	if err != nil {
		return nil, mdwerrors.InvalidPattern("SplitPattern", pattern, err)
	}
	out := make([]Value, len(parts))
	for i, p := range parts {
		out[i] = v.derive([]rune(p))
	}
	return out, nil
}
