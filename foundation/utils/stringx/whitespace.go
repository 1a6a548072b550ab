// File: whitespace.go
// Title: Whitespace, Lines and Word Wrapping
// Description: Trimming with Unicode whitespace or a custom character set,
//              whitespace collapsing, tab conversion, line and literal
//              splitting, typographic cleanup and word-aware shortening.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// trimSet returns the predicate for a trim call: Unicode whitespace when
// no characters are given, otherwise membership in chars.
func trimSet(chars []string) func(rune) bool {
	set := strings.Join(chars, "")
	if set == "" {
		return isSpace
	}
	return func(r rune) bool { return strings.ContainsRune(set, r) }
}

func trimBounds(rs []rune, pred func(rune) bool, left, right bool) (int, int) {
	from, to := 0, len(rs)
	if left {
		for from < to && pred(rs[from]) {
			from++
		}
	}
	if right {
		for to > from && pred(rs[to-1]) {
			to--
		}
	}
	return from, to
}

// Trim removes leading and trailing whitespace, or the given characters.
func (v Value) Trim(chars ...string) Value {
	from, to := trimBounds(v.runes, trimSet(chars), true, true)
	return v.derive(v.runes[from:to:to])
}

// TrimLeft removes leading whitespace, or the given characters.
func (v Value) TrimLeft(chars ...string) Value {
	from, to := trimBounds(v.runes, trimSet(chars), true, false)
	return v.derive(v.runes[from:to:to])
}

// TrimRight removes trailing whitespace, or the given characters.
func (v Value) TrimRight(chars ...string) Value {
	from, to := trimBounds(v.runes, trimSet(chars), false, true)
	return v.derive(v.runes[from:to:to])
}

// CollapseWhitespace replaces each whitespace run with one space and
// trims the result.
func (v Value) CollapseWhitespace() Value {
	out := make([]rune, 0, len(v.runes))
	inSpace := false
	for _, r := range v.runes {
		if isSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && len(out) > 0 {
			out = append(out, ' ')
		}
		inSpace = false
		out = append(out, r)
	}
	return v.derive(out)
}

// StripWhitespace removes every whitespace codepoint.
func (v Value) StripWhitespace() Value {
	out := make([]rune, 0, len(v.runes))
	for _, r := range v.runes {
		if !isSpace(r) {
			out = append(out, r)
		}
	}
	return v.derive(out)
}

// ToSpaces replaces each tab with tab spaces.
func (v Value) ToSpaces(tab int) Value {
	return v.Replace("\t", strings.Repeat(" ", max(tab, 0)), true)
}

// ToTabs replaces each run of tab spaces with a tab.
func (v Value) ToTabs(tab int) Value {
	if tab <= 0 {
		return v
	}
	return v.Replace(strings.Repeat(" ", tab), "\t", true)
}

func isLineBreak(r rune) bool {
	return r == '\r' || r == '\n'
}

// Lines splits on line breaks. One or two consecutive CR/LF codepoints
// form a single break, so "\r\n" and "\n\r" both separate two lines.
func (v Value) Lines() []Value {
	var lines []Value
	start := 0
	for i := 0; i < len(v.runes); i++ {
		if !isLineBreak(v.runes[i]) {
			continue
		}
		lines = append(lines, v.derive(v.runes[start:i:i]))
		if i+1 < len(v.runes) && isLineBreak(v.runes[i+1]) {
			i++
		}
		start = i + 1
	}
	return append(lines, v.derive(v.runes[start:]))
}

// Split cuts the value at each literal sep. A positive limit keeps at
// most that many leading pieces and drops the rest; limit <= 0 keeps all.
// An empty sep gives the whole value as the only piece.
func (v Value) Split(sep string, limit int) []Value {
	if sep == "" {
		return []Value{v}
	}
	parts := strings.Split(v.String(), sep)
	if limit > 0 && len(parts) > limit {
		parts = parts[:limit]
	}
	out := make([]Value, len(parts))
	for i, p := range parts {
		out[i] = v.derive([]rune(p))
	}
	return out
}

var tidyReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	"«", `"`, "»", `"`, "″", `"`,
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"‹", "'", "›", "'", "′", "'",
	"–", "-", "—", "-", "―", "-", "‒", "-",
	"…", "...",
)

// Tidy replaces typographic quotes, dashes and the ellipsis with their
// ASCII forms.
func (v Value) Tidy() Value {
	return v.derive([]rune(tidyReplacer.Replace(v.String())))
}

// ShortenAfterWord cuts the value to at most length codepoints at a word
// boundary and appends suffix when anything was removed.
func (v Value) ShortenAfterWord(length int, suffix string) Value {
	if length <= 0 {
		return v.derive(nil)
	}
	if len(v.runes) <= length {
		return v
	}
	if v.runes[length-1] == ' ' {
		return v.First(length - 1).Append(suffix)
	}
	cut := v.First(length)
	if i := cut.IndexOfLast(" ", 0); i > 0 {
		return cut.First(i).Append(suffix)
	}
	return v.First(length - 1).Append(suffix)
}

// LineWrapAfterWord wraps every line at spaces so that lines stay within
// width codepoints, joining the pieces with brk. Words longer than width
// are split only when cut is set. A width <= 0 leaves the value unchanged.
func (v Value) LineWrapAfterWord(width int, brk string, cut bool) Value {
	if width <= 0 {
		return v
	}
	if brk == "" {
		brk = "\n"
	}

	lines := v.Lines()
	wrapped := make([]string, len(lines))
	for i, line := range lines {
		wrapped[i] = wrapLine(line.runes, width, brk, cut)
	}
	return v.derive([]rune(strings.Join(wrapped, "\n")))
}

func wrapLine(line []rune, width int, brk string, cut bool) string {
	var (
		out     []string
		current []rune
	)
	flush := func() {
		out = append(out, string(current))
		current = current[:0:0]
	}

	for _, word := range strings.Split(string(line), " ") {
		w := []rune(word)
		switch {
		case len(current) == 0:
			current = append(current, w...)
		case len(current)+1+len(w) <= width:
			current = append(append(current, ' '), w...)
		default:
			flush()
			current = append(current, w...)
		}
		for cut && len(current) > width {
			head := current[:width:width]
			current = current[width:]
			out = append(out, string(head))
		}
	}
	out = append(out, string(current))
	return strings.Join(out, brk)
}
