// File: case.go
// Title: Case Conversion
// Description: Case-style conversions built on the tokenizer (camelCase,
//              dash-case, snake_case, titles) and the plain per-codepoint
//              case mappings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of case conversions
// - 2025-02-10 v0.2.0: Token based conversions on codepoint values

package stringx

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (v Value) tokenize(splitDigits bool) []token {
	return tokenize(v.runes, tokenizeOptions{splitDigits: splitDigits, isUpper: v.isUpper})
}

// Camelize joins the words of the value in camelCase. The first word is
// lowercased, every later word and digit run gets its first codepoint
// uppercased, and separators are dropped.
func (v Value) Camelize() Value {
	var out []rune
	for i, t := range words(v.Trim().tokenize(true)) {
		if i == 0 {
			for _, r := range t.runes {
				out = append(out, v.toLower(r))
			}
			continue
		}
		out = append(out, v.toUpper(t.runes[0]))
		out = append(out, t.runes[1:]...)
	}
	return v.derive(out)
}

// UpperCamelize is Camelize with the first codepoint uppercased.
func (v Value) UpperCamelize() Value {
	return v.Camelize().UpperCaseFirst()
}

// Delimit lowercases the trimmed value and joins its words with sep.
// Separator runs become one sep, so leading and trailing dashes or
// underscores survive as a single sep. Digits stay attached to their word.
func (v Value) Delimit(sep string) Value {
	delim := []rune(sep)
	var out []rune
	prev := tokenSeparator
	for _, t := range v.Trim().tokenize(false) {
		switch {
		case t.kind == tokenSeparator:
			out = append(out, delim...)
		case prev != tokenSeparator:
			out = append(out, delim...)
			fallthrough
		default:
			for _, r := range t.runes {
				out = append(out, v.toLower(r))
			}
		}
		prev = t.kind
	}
	return v.derive(out)
}

// Dasherize is Delimit("-").
func (v Value) Dasherize() Value {
	return v.Delimit("-")
}

// Underscored is Delimit("_").
func (v Value) Underscored() Value {
	return v.Delimit("_")
}

// Snakeize converts to snake_case with digit runs as words of their own
// and no leading or trailing underscore.
func (v Value) Snakeize() Value {
	parts := make([]string, 0)
	for _, t := range words(v.tokenize(true)) {
		lowered := make([]rune, len(t.runes))
		for i, r := range t.runes {
			lowered[i] = v.toLower(r)
		}
		parts = append(parts, string(lowered))
	}
	return v.derive([]rune(strings.Join(parts, "_")))
}

// Titleize trims the value and capitalizes every whitespace separated
// word: first codepoint upper, the rest lower. Words found verbatim in
// ignore are left as they are.
func (v Value) Titleize(ignore ...string) Value {
	return v.Trim().mapWords(func(word []rune) []rune {
		if slices.Contains(ignore, string(word)) {
			return word
		}
		return v.capitalize(word)
	})
}

// mapWords applies f to every maximal run of non-whitespace codepoints and
// keeps the whitespace between them.
func (v Value) mapWords(f func([]rune) []rune) Value {
	return v.mapRuns(isSpace, f)
}

// mapRuns applies f to every maximal run of codepoints that are not breaks
// and copies the breaks through.
func (v Value) mapRuns(isBreak func(rune) bool, f func([]rune) []rune) Value {
	out := make([]rune, 0, len(v.runes))
	start := -1
	for i := 0; i <= len(v.runes); i++ {
		if i < len(v.runes) && !isBreak(v.runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, f(v.runes[start:i:i])...)
			start = -1
		}
		if i < len(v.runes) {
			out = append(out, v.runes[i])
		}
	}
	return v.derive(out)
}

func (v Value) capitalize(word []rune) []rune {
	out := make([]rune, len(word))
	for i, r := range word {
		if i == 0 {
			out[i] = v.toUpper(r)
		} else {
			out[i] = v.toLower(r)
		}
	}
	return out
}

// Humanize drops "_id", turns underscores into spaces, trims and
// uppercases the first codepoint.
func (v Value) Humanize() Value {
	return v.Replace("_id", "", true).
		Replace("_", " ", true).
		Trim().
		UpperCaseFirst()
}

// SwapCase inverts the case of every cased codepoint.
func (v Value) SwapCase() Value {
	return v.mapRunes(func(r rune) rune {
		switch {
		case v.isUpper(r):
			return v.toLower(r)
		case v.isLower(r):
			return v.toUpper(r)
		default:
			return r
		}
	})
}

// ToLowerCase lowercases every codepoint.
func (v Value) ToLowerCase() Value {
	return v.mapRunes(v.toLower)
}

// ToUpperCase uppercases every codepoint.
func (v Value) ToUpperCase() Value {
	return v.mapRunes(v.toUpper)
}

// UpperCaseFirst uppercases the first codepoint.
func (v Value) UpperCaseFirst() Value {
	return v.mapFirst(v.toUpper)
}

// LowerCaseFirst lowercases the first codepoint.
func (v Value) LowerCaseFirst() Value {
	return v.mapFirst(v.toLower)
}

func (v Value) mapFirst(f func(rune) rune) Value {
	if len(v.runes) == 0 {
		return v
	}
	out := slices.Clone(v.runes)
	out[0] = f(out[0])
	return v.derive(out)
}

// ToTitleCase applies Unicode title casing to every word, where words are
// separated by whitespace or underscores.
func (v Value) ToTitleCase() Value {
	isBreak := func(r rune) bool { return r == '_' || isSpace(r) }
	if v.asciiOnly() {
		return v.mapRuns(isBreak, v.capitalize)
	}
	title := cases.Title(language.Und)
	return v.mapRuns(isBreak, func(word []rune) []rune {
		return []rune(title.String(string(word)))
	})
}
