// File: tokenize.go
// Title: Word Tokenizer
// Description: Splits codepoints into word, digit-run and separator tokens
//              in one scan. Case-style conversions rejoin the tokens with a
//              delimiter and a per-token case transform.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenDigits
	tokenSeparator
)

type token struct {
	kind  tokenKind
	runes []rune
}

type tokenizeOptions struct {
	// splitDigits makes every digit run a token of its own.
	splitDigits bool
	// isUpper decides where a case boundary starts a new word.
	isUpper func(rune) bool
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || isSpace(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func classify(r rune, opts tokenizeOptions) tokenKind {
	switch {
	case isSeparator(r):
		return tokenSeparator
	case opts.splitDigits && unicode.IsDigit(r):
		return tokenDigits
	default:
		return tokenWord
	}
}

// tokenize scans rs once. Adjacent separators collapse into one token. A
// new word starts at an uppercase codepoint that directly follows a letter
// or digit, and, with splitDigits, wherever digits meet non-digits.
func tokenize(rs []rune, opts tokenizeOptions) []token {
	var tokens []token
	start := 0

	for i := 1; i <= len(rs); i++ {
		if i < len(rs) && !boundary(rs, i, opts) {
			continue
		}
		tokens = append(tokens, token{
			kind:  classify(rs[start], opts),
			runes: rs[start:i:i],
		})
		start = i
	}
	return tokens
}

func boundary(rs []rune, i int, opts tokenizeOptions) bool {
	prev, cur := rs[i-1], rs[i]
	pk, ck := classify(prev, opts), classify(cur, opts)
	if pk != ck {
		return true
	}
	if ck == tokenSeparator {
		return false
	}
	return opts.isUpper(cur) && isWordRune(prev)
}

// words returns the non-separator tokens.
func words(tokens []token) []token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t.kind != tokenSeparator {
			out = append(out, t)
		}
	}
	return out
}
