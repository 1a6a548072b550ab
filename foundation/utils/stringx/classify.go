// File: classify.go
// Title: Character Class Predicates
// Description: Whole-value membership tests over codepoints. The "only
//              contains" family holds for the empty value; the "has"
//              family needs at least one qualifying codepoint.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of IsBlank and friends
// - 2025-03-02 v0.2.0: Codepoint predicates, JSON, HTML and glob matching

package stringx

import (
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

func (v Value) only(pred func(rune) bool) bool {
	for _, r := range v.runes {
		if !pred(r) {
			return false
		}
	}
	return true
}

func (v Value) any(pred func(rune) bool) bool {
	for _, r := range v.runes {
		if pred(r) {
			return true
		}
	}
	return false
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace covers the POSIX space class in its Unicode reading: every
// White_Space codepoint plus the separator categories.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r)
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsAlpha reports whether the value only contains letters.
func (v Value) IsAlpha() bool {
	return v.only(isAlpha)
}

// IsAlphanumeric reports whether the value only contains letters and
// numbers.
func (v Value) IsAlphanumeric() bool {
	return v.only(isAlnum)
}

// IsBlank reports whether the value only contains whitespace.
func (v Value) IsBlank() bool {
	return v.only(isSpace)
}

// IsHexadecimal reports whether the value only contains hex digits in
// either case.
func (v Value) IsHexadecimal() bool {
	return v.only(isHex)
}

// IsLowerCase reports whether the value only contains lowercase letters.
func (v Value) IsLowerCase() bool {
	return v.only(v.isLower)
}

// IsUpperCase reports whether the value only contains uppercase letters.
func (v Value) IsUpperCase() bool {
	return v.only(v.isUpper)
}

// HasLowerCase reports whether at least one codepoint is lowercase.
func (v Value) HasLowerCase() bool {
	return v.any(v.isLower)
}

// HasUpperCase reports whether at least one codepoint is uppercase.
func (v Value) HasUpperCase() bool {
	return v.any(v.isUpper)
}

// IsNumeric reports whether the value is a decimal number with optional
// sign, fraction and exponent.
func (v Value) IsNumeric() bool {
	_, ok := parseNumeric(v.String())
	return ok
}

// IsJSON reports whether the value is a JSON document. Blank input is not
// JSON.
func (v Value) IsJSON() bool {
	if v.IsBlank() {
		return false
	}
	return gjson.Valid(v.String())
}

// IsBase64 reports whether the value is canonical padded base64. The
// empty value is accepted only when emptyIsValid is set.
func (v Value) IsBase64(emptyIsValid bool) bool {
	s := v.String()
	if s == "" {
		return emptyIsValid
	}
	decoded, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s
}

// IsHTML reports whether the value contains at least one markup tag.
func (v Value) IsHTML() bool {
	z := html.NewTokenizer(strings.NewReader(v.String()))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			return true
		}
	}
}

// IsEmail reports whether the value is an address accepted by the
// validator. A nil validator falls back to MailAddressValidator.
func (v Value) IsEmail(validator EmailValidator) bool {
	if validator == nil {
		validator = MailAddressValidator{}
	}
	return validator.ValidEmail(v.String())
}

// Is reports whether the whole value matches a shell-style pattern where
// '*' matches any run of codepoints and '?' matches exactly one.
func (v Value) Is(pattern string) bool {
	if v.String() == pattern {
		return true
	}
	return globMatch([]rune(pattern), v.runes)
}

func globMatch(pattern, text []rune) bool {
	p, t := 0, 0
	star, mark := -1, 0

	for t < len(text) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == text[t]):
			p++
			t++
		case p < len(pattern) && pattern[p] == '*':
			star, mark = p, t
			p++
		case star >= 0:
			p = star + 1
			mark++
			t = mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
