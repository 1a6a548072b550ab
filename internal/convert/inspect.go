// File: inspect.go
// Title: Value Inspection
// Description: Codepoint listing and classification summary of a string
//              value for the inspect command and the playground.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package convert

import (
	"fmt"

	"github.com/msto63/stringy/foundation/utils/stringx"
)

// Codepoint describes one position of a value.
type Codepoint struct {
	Index    int
	Negative int
	Rune     rune
}

// Hex returns the U+XXXX notation of the codepoint.
func (c Codepoint) Hex() string {
	return fmt.Sprintf("U+%04X", c.Rune)
}

// Display returns the codepoint as printable text, with control characters
// shown by their escape.
func (c Codepoint) Display() string {
	if c.Rune < 0x20 || c.Rune == 0x7F {
		return fmt.Sprintf("%q", c.Rune)
	}
	return string(c.Rune)
}

// Codepoints lists every codepoint of v with its positive and negative
// index.
func Codepoints(v stringx.Value) []Codepoint {
	n := v.Len()
	out := make([]Codepoint, 0, n)
	for i, r := range v.All() {
		out = append(out, Codepoint{Index: i, Negative: i - n, Rune: r})
	}
	return out
}

// Predicate is a named classification result.
type Predicate struct {
	Name  string
	Holds bool
}

// Predicates evaluates the classification predicates of v with the
// default collaborators.
func Predicates(v stringx.Value) []Predicate {
	return []Predicate{
		{"alpha", v.IsAlpha()},
		{"alphanumeric", v.IsAlphanumeric()},
		{"blank", v.IsBlank()},
		{"hexadecimal", v.IsHexadecimal()},
		{"numeric", v.IsNumeric()},
		{"lowercase", v.IsLowerCase()},
		{"uppercase", v.IsUpperCase()},
		{"has-lowercase", v.HasLowerCase()},
		{"has-uppercase", v.HasUpperCase()},
		{"json", v.IsJSON()},
		{"base64", v.IsBase64(false)},
		{"html", v.IsHTML()},
		{"email", v.IsEmail(nil)},
		{"boolean", v.ToBoolean()},
	}
}
