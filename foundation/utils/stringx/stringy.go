// File: stringy.go
// Title: Immutable String Value
// Description: Defines Value, an immutable sequence of Unicode codepoints
//              tagged with the encoding it was decoded from. Every method
//              returns a new Value and never writes to the receiver.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-02-10 v0.2.0: Codepoint based value type replaces free functions
// - 2025-03-02 v0.3.0: Closed construction set, read-only indexed access

package stringx

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"unicode"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

// Value is an immutable string of Unicode codepoints. The zero Value is the
// empty string with the UTF-8 encoding tag.
type Value struct {
	runes    []rune
	encoding string
}

// New creates a Value from s. The optional encoding tag defaults to UTF-8;
// s itself is always interpreted as UTF-8 Go text.
func New(s string, encoding ...string) Value {
	return Value{runes: []rune(s), encoding: pickEncoding(encoding)}
}

// FromRunes creates a Value from a copy of r.
func FromRunes(r []rune, encoding ...string) Value {
	return Value{runes: slices.Clone(r), encoding: pickEncoding(encoding)}
}

// From creates a Value from any text-convertible input: nil, string, []byte,
// []rune, bool, integer and float kinds, fmt.Stringer, error or Value.
// Aggregates and other types fail with INVALID_INPUT.
func From(input any, encoding ...string) (Value, error) {
	enc := pickEncoding(encoding)

	switch x := input.(type) {
	case nil:
		return Value{encoding: enc}, nil
	case Value:
		if len(encoding) == 0 {
			return x, nil
		}
		return x.WithEncoding(enc), nil
	case string:
		return New(x, enc), nil
	case []byte:
		return New(string(x), enc), nil
	case []rune:
		return FromRunes(x, enc), nil
	case bool:
		if x {
			return New("1", enc), nil
		}
		return Value{encoding: enc}, nil
	case int:
		return New(strconv.FormatInt(int64(x), 10), enc), nil
	case int8:
		return New(strconv.FormatInt(int64(x), 10), enc), nil
	case int16:
		return New(strconv.FormatInt(int64(x), 10), enc), nil
	case int32:
		return New(strconv.FormatInt(int64(x), 10), enc), nil
	case int64:
		return New(strconv.FormatInt(x, 10), enc), nil
	case uint:
		return New(strconv.FormatUint(uint64(x), 10), enc), nil
	case uint8:
		return New(strconv.FormatUint(uint64(x), 10), enc), nil
	case uint16:
		return New(strconv.FormatUint(uint64(x), 10), enc), nil
	case uint32:
		return New(strconv.FormatUint(uint64(x), 10), enc), nil
	case uint64:
		return New(strconv.FormatUint(x, 10), enc), nil
	case float32:
		return New(strconv.FormatFloat(float64(x), 'f', -1, 32), enc), nil
	case float64:
		return New(strconv.FormatFloat(x, 'f', -1, 64), enc), nil
	case fmt.Stringer:
		return New(x.String(), enc), nil
	case error:
		return New(x.Error(), enc), nil
	default:
		return Value{}, mdwerrors.InvalidInput("From", input)
	}
}

// Must returns v or panics if err is non-nil.
func Must(v Value, err error) Value {
	if err != nil {
		panic(err)
	}
	return v
}

// derive builds a Value sharing the receiver's encoding tag.
func (v Value) derive(r []rune) Value {
	return Value{runes: r, encoding: v.encoding}
}

// String returns the content as a Go string.
func (v Value) String() string {
	return string(v.runes)
}

// Encoding returns the encoding tag.
func (v Value) Encoding() string {
	if v.encoding == "" {
		return DefaultEncoding
	}
	return v.encoding
}

// WithEncoding returns the same codepoints under another encoding tag.
func (v Value) WithEncoding(encoding string) Value {
	return Value{runes: v.runes, encoding: canonicalEncoding(encoding)}
}

// Runes returns a copy of the codepoints.
func (v Value) Runes() []rune {
	return slices.Clone(v.runes)
}

// Len returns the number of codepoints.
func (v Value) Len() int {
	return len(v.runes)
}

// IsEmpty reports whether the value has no codepoints.
func (v Value) IsEmpty() bool {
	return len(v.runes) == 0
}

// Equal reports whether both values hold the same codepoints under the same
// encoding tag.
func (v Value) Equal(other Value) bool {
	return v.Encoding() == other.Encoding() && slices.Equal(v.runes, other.runes)
}

// Get returns the codepoint at index i as a Value. Negative indexes count
// from the end. An index outside the value fails with INDEX_OUT_OF_RANGE.
func (v Value) Get(i int) (Value, error) {
	idx, ok := v.index(i)
	if !ok {
		return Value{}, mdwerrors.IndexOutOfRange("Get", i, len(v.runes))
	}
	return v.derive(v.runes[idx : idx+1 : idx+1]), nil
}

// Exists reports whether index i addresses a codepoint.
func (v Value) Exists(i int) bool {
	_, ok := v.index(i)
	return ok
}

// Set always fails with IMMUTABLE_VIOLATION.
func (v Value) Set(i int, _ string) error {
	return mdwerrors.ImmutableViolation("Set", i)
}

// Delete always fails with IMMUTABLE_VIOLATION.
func (v Value) Delete(i int) error {
	return mdwerrors.ImmutableViolation("Delete", i)
}

// Chars returns every codepoint as a single-codepoint Value.
func (v Value) Chars() []Value {
	chars := make([]Value, len(v.runes))
	for i := range v.runes {
		chars[i] = v.derive(v.runes[i : i+1 : i+1])
	}
	return chars
}

// All iterates over codepoint positions and codepoints.
func (v Value) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range v.runes {
			if !yield(i, r) {
				return
			}
		}
	}
}

var booleanWords = map[string]bool{
	"true":  true,
	"1":     true,
	"on":    true,
	"yes":   true,
	"false": false,
	"0":     false,
	"off":   false,
	"no":    false,
}

// ToBoolean maps true/1/on/yes and false/0/off/no (case-insensitively) to
// their booleans. Other numeric text is true when its integer part is
// positive; anything else is true when it contains a non-whitespace
// codepoint.
func (v Value) ToBoolean() bool {
	s := strings.ToLower(v.String())
	if b, ok := booleanWords[s]; ok {
		return b
	}
	if f, ok := parseNumeric(s); ok {
		return f >= 1
	}
	return slices.IndexFunc(v.runes, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}

// Append returns the value followed by each of parts.
func (v Value) Append(parts ...string) Value {
	out := slices.Clone(v.runes)
	for _, p := range parts {
		out = append(out, []rune(p)...)
	}
	return v.derive(out)
}

// Prepend returns parts followed by the value.
func (v Value) Prepend(parts ...string) Value {
	var out []rune
	for _, p := range parts {
		out = append(out, []rune(p)...)
	}
	return v.derive(append(out, v.runes...))
}

// parseNumeric accepts decimal numbers with optional sign, fraction and
// exponent. Spelled-out forms such as "inf" or "nan" are not numeric.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	}) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func pickEncoding(encoding []string) string {
	if len(encoding) == 0 {
		return DefaultEncoding
	}
	return canonicalEncoding(encoding[0])
}
