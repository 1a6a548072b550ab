// File: compose.go
// Title: Composition and Replacement
// Description: Operations that build a new value from the receiver and
//              other text: insertion, wrapping, prefix and suffix handling,
//              repetition, reversal and literal replacement.
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
)

// Insert places sub before codepoint i. An index outside [0, Len()]
// leaves the value unchanged.
func (v Value) Insert(sub string, i int) Value {
	if i < 0 || i > len(v.runes) {
		return v
	}
	ins := []rune(sub)
	out := make([]rune, 0, len(v.runes)+len(ins))
	out = append(out, v.runes[:i]...)
	out = append(out, ins...)
	out = append(out, v.runes[i:]...)
	return v.derive(out)
}

// Surround puts s on both sides of the value.
func (v Value) Surround(s string) Value {
	return v.Prepend(s).Append(s)
}

// EnsureLeft prepends prefix unless the value already starts with it.
func (v Value) EnsureLeft(prefix string) Value {
	if v.StartsWith(prefix, true) {
		return v
	}
	return v.Prepend(prefix)
}

// EnsureRight appends suffix unless the value already ends with it.
func (v Value) EnsureRight(suffix string) Value {
	if v.EndsWith(suffix, true) {
		return v
	}
	return v.Append(suffix)
}

// RemoveLeft drops prefix when present.
func (v Value) RemoveLeft(prefix string) Value {
	if !v.StartsWith(prefix, true) {
		return v
	}
	return v.derive(v.runes[len([]rune(prefix)):])
}

// RemoveRight drops suffix when present.
func (v Value) RemoveRight(suffix string) Value {
	if !v.EndsWith(suffix, true) {
		return v
	}
	end := len(v.runes) - len([]rune(suffix))
	return v.derive(v.runes[:end:end])
}

// Repeat concatenates n copies of the value. n <= 0 gives the empty value.
func (v Value) Repeat(n int) Value {
	if n <= 0 || len(v.runes) == 0 {
		return v.derive(nil)
	}
	out := make([]rune, 0, len(v.runes)*n)
	for range n {
		out = append(out, v.runes...)
	}
	return v.derive(out)
}

// Reverse returns the codepoints in reverse order.
func (v Value) Reverse() Value {
	out := slices.Clone(v.runes)
	slices.Reverse(out)
	return v.derive(out)
}

// replaceRunes substitutes every non-overlapping needle, matching on the
// folded haystack when caseSensitive is false.
func replaceRunes(haystack, needle, repl []rune, caseSensitive bool) []rune {
	h, n := haystack, needle
	if !caseSensitive {
		h, n = foldRunes(haystack), foldRunes(needle)
	}

	i := indexRunes(h, n, 0)
	if i < 0 {
		return haystack
	}

	out := make([]rune, 0, len(haystack))
	last := 0
	for ; i >= 0; i = indexRunes(h, n, last) {
		out = append(out, haystack[last:i]...)
		out = append(out, repl...)
		last = i + len(n)
	}
	return append(out, haystack[last:]...)
}

// Replace substitutes every occurrence of search with repl. An empty
// search leaves non-empty values unchanged and turns the empty value into
// repl.
func (v Value) Replace(search, repl string, caseSensitive bool) Value {
	if search == "" {
		if len(v.runes) == 0 {
			return v.derive([]rune(repl))
		}
		return v
	}
	out := replaceRunes(v.runes, []rune(search), []rune(repl), caseSensitive)
	return v.derive(out)
}

// ReplaceAll applies Replace for each search in order.
func (v Value) ReplaceAll(searches []string, repl string, caseSensitive bool) Value {
	out := v
	for _, s := range searches {
		out = out.Replace(s, repl, caseSensitive)
	}
	return out
}

// ReplaceBeginning swaps a leading search for repl. An empty search
// prepends repl.
func (v Value) ReplaceBeginning(search, repl string) Value {
	if !v.StartsWith(search, true) {
		return v
	}
	return v.RemoveLeft(search).Prepend(repl)
}

// ReplaceEnding swaps a trailing search for repl. An empty search appends
// repl.
func (v Value) ReplaceEnding(search, repl string) Value {
	if !v.EndsWith(search, true) {
		return v
	}
	return v.RemoveRight(search).Append(repl)
}
