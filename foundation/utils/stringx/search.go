// File: search.go
// Title: Search and Windowing
// Description: Codepoint-indexed substring search with positive and
//              negative offsets, membership tests, prefix and suffix checks
//              and the delimiter windows (Between, AfterFirst, ...).
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// foldString case-folds s for comparisons that do not need positions.
func foldString(s string) string {
	return cases.Fold().String(s)
}

// foldRunes folds each codepoint on its own so positions survive. A
// codepoint whose full folding expands (ß → ss) is lowercased instead.
func foldRunes(rs []rune) []rune {
	c := cases.Fold()
	out := make([]rune, len(rs))
	for i, r := range rs {
		f := []rune(c.String(string(r)))
		if len(f) == 1 {
			out[i] = f[0]
		} else {
			out[i] = unicode.ToLower(r)
		}
	}
	return out
}

// indexRunes returns the first position >= from where needle starts.
func indexRunes(haystack, needle []rune, from int) int {
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// lastIndexRunes returns the last position in [from, upto] where needle
// starts.
func lastIndexRunes(haystack, needle []rune, from, upto int) int {
	upto = min(upto, len(haystack)-len(needle))
	for i := upto; i >= from; i-- {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func indexOf(haystack, needle []rune, offset int) int {
	if offset < 0 {
		offset += len(haystack)
	}
	if offset < 0 || offset > len(haystack) {
		return -1
	}
	return indexRunes(haystack, needle, offset)
}

// indexOfLast searches backwards. A non-negative offset is the lowest
// accepted start; a negative one caps the start at len+offset.
func indexOfLast(haystack, needle []rune, offset int) int {
	n := len(haystack)
	if offset >= 0 {
		if offset > n {
			return -1
		}
		return lastIndexRunes(haystack, needle, offset, n)
	}
	upto := n + offset
	if upto < 0 {
		return -1
	}
	return lastIndexRunes(haystack, needle, 0, upto)
}

// IndexOf returns the codepoint position of the first needle at or after
// offset, or -1. A negative offset counts from the end.
func (v Value) IndexOf(needle string, offset int) int {
	return indexOf(v.runes, []rune(needle), offset)
}

// IndexOfIgnoreCase is IndexOf with case folding.
func (v Value) IndexOfIgnoreCase(needle string, offset int) int {
	return indexOf(foldRunes(v.runes), foldRunes([]rune(needle)), offset)
}

// IndexOfLast returns the codepoint position of the last needle, or -1.
// A negative offset excludes matches starting after len+offset.
func (v Value) IndexOfLast(needle string, offset int) int {
	return indexOfLast(v.runes, []rune(needle), offset)
}

// IndexOfLastIgnoreCase is IndexOfLast with case folding.
func (v Value) IndexOfLastIgnoreCase(needle string, offset int) int {
	return indexOfLast(foldRunes(v.runes), foldRunes([]rune(needle)), offset)
}

// Contains reports whether needle occurs in the value.
func (v Value) Contains(needle string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(v.String(), needle)
	}
	return strings.Contains(foldString(v.String()), foldString(needle))
}

// ContainsAny reports whether at least one needle occurs. An empty list
// gives false.
func (v Value) ContainsAny(needles []string, caseSensitive bool) bool {
	for _, n := range needles {
		if v.Contains(n, caseSensitive) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every needle occurs. An empty list gives
// false.
func (v Value) ContainsAll(needles []string, caseSensitive bool) bool {
	if len(needles) == 0 {
		return false
	}
	for _, n := range needles {
		if !v.Contains(n, caseSensitive) {
			return false
		}
	}
	return true
}

// CountSubstr counts non-overlapping occurrences of sub. An empty sub
// occurs zero times.
func (v Value) CountSubstr(sub string, caseSensitive bool) int {
	if sub == "" {
		return 0
	}
	if caseSensitive {
		return strings.Count(v.String(), sub)
	}
	return strings.Count(foldString(v.String()), foldString(sub))
}

func (v Value) windowEquals(window []rune, s string, caseSensitive bool) bool {
	if caseSensitive {
		return string(window) == s
	}
	return foldString(string(window)) == foldString(s)
}

// StartsWith reports whether the value begins with s.
func (v Value) StartsWith(s string, caseSensitive bool) bool {
	n := len([]rune(s))
	if n > len(v.runes) {
		return false
	}
	return v.windowEquals(v.runes[:n], s, caseSensitive)
}

// StartsWithAny reports whether the value begins with any of prefixes.
func (v Value) StartsWithAny(prefixes []string, caseSensitive bool) bool {
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return v.StartsWith(p, caseSensitive)
	})
}

// EndsWith reports whether the value ends with s.
func (v Value) EndsWith(s string, caseSensitive bool) bool {
	n := len([]rune(s))
	if n > len(v.runes) {
		return false
	}
	return v.windowEquals(v.runes[len(v.runes)-n:], s, caseSensitive)
}

// EndsWithAny reports whether the value ends with any of suffixes.
func (v Value) EndsWithAny(suffixes []string, caseSensitive bool) bool {
	return slices.ContainsFunc(suffixes, func(s string) bool {
		return v.EndsWith(s, caseSensitive)
	})
}

// Between returns the text between the first start found at or after
// offset and the next end after it. A missing delimiter gives the empty
// value.
func (v Value) Between(start, end string, offset int) Value {
	startIdx := v.IndexOf(start, offset)
	if startIdx < 0 {
		return v.derive(nil)
	}
	from := startIdx + len([]rune(start))
	endIdx := v.IndexOf(end, from)
	if endIdx < 0 {
		return v.derive(nil)
	}
	return v.derive(v.runes[from:endIdx:endIdx])
}

func (v Value) after(idx int, sep string) Value {
	if idx < 0 {
		return v.derive(nil)
	}
	return v.derive(v.runes[idx+len([]rune(sep)):])
}

func (v Value) before(idx int) Value {
	if idx < 0 {
		return v.derive(nil)
	}
	return v.derive(v.runes[:idx:idx])
}

// AfterFirst returns what follows the first sep, or the empty value.
func (v Value) AfterFirst(sep string) Value {
	return v.after(v.IndexOf(sep, 0), sep)
}

// AfterFirstIgnoreCase is AfterFirst with case folding.
func (v Value) AfterFirstIgnoreCase(sep string) Value {
	return v.after(v.IndexOfIgnoreCase(sep, 0), sep)
}

// AfterLast returns what follows the last sep, or the empty value.
func (v Value) AfterLast(sep string) Value {
	return v.after(v.IndexOfLast(sep, 0), sep)
}

// AfterLastIgnoreCase is AfterLast with case folding.
func (v Value) AfterLastIgnoreCase(sep string) Value {
	return v.after(v.IndexOfLastIgnoreCase(sep, 0), sep)
}

// BeforeFirst returns what precedes the first sep, or the empty value.
func (v Value) BeforeFirst(sep string) Value {
	return v.before(v.IndexOf(sep, 0))
}

// BeforeFirstIgnoreCase is BeforeFirst with case folding.
func (v Value) BeforeFirstIgnoreCase(sep string) Value {
	return v.before(v.IndexOfIgnoreCase(sep, 0))
}

// BeforeLast returns what precedes the last sep, or the empty value.
func (v Value) BeforeLast(sep string) Value {
	return v.before(v.IndexOfLast(sep, 0))
}

// BeforeLastIgnoreCase is BeforeLast with case folding.
func (v Value) BeforeLastIgnoreCase(sep string) Value {
	return v.before(v.IndexOfLastIgnoreCase(sep, 0))
}
