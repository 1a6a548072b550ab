// File: encoding.go
// Title: Encoding Tags and Byte Decoding
// Description: Canonical encoding tags, per-encoding case mapping and the
//              conversion between raw bytes and codepoints using the
//              golang.org/x/text encoding registry.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-10
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: Exact Latin-1, no entity fallback when encoding

package stringx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	xunicode "golang.org/x/text/encoding/unicode"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

// DefaultEncoding is the tag used when none is given.
const DefaultEncoding = "UTF-8"

var encodingAliases = map[string]string{
	"UTF8":     "UTF-8",
	"UTF16":    "UTF-16",
	"UTF-16LE": "UTF-16LE",
	"UTF-16BE": "UTF-16BE",
	"ASCII":    "ASCII",
	"US-ASCII": "ASCII",
	"LATIN1":   "ISO-8859-1",
	"LATIN-1":  "ISO-8859-1",
}

// canonicalEncoding upper-cases a tag and folds common aliases. An empty
// tag becomes DefaultEncoding.
func canonicalEncoding(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return DefaultEncoding
	}
	if alias, ok := encodingAliases[tag]; ok {
		return alias
	}
	return tag
}

// asciiOnly reports whether case mapping is restricted to ASCII letters.
func (v Value) asciiOnly() bool {
	return v.Encoding() == "ASCII"
}

func (v Value) toUpper(r rune) rune {
	if v.asciiOnly() && r > unicode.MaxASCII {
		return r
	}
	return unicode.ToUpper(r)
}

func (v Value) toLower(r rune) rune {
	if v.asciiOnly() && r > unicode.MaxASCII {
		return r
	}
	return unicode.ToLower(r)
}

func (v Value) isUpper(r rune) bool {
	if v.asciiOnly() {
		return r >= 'A' && r <= 'Z'
	}
	return unicode.IsUpper(r)
}

func (v Value) isLower(r rune) bool {
	if v.asciiOnly() {
		return r >= 'a' && r <= 'z'
	}
	return unicode.IsLower(r)
}

func (v Value) mapRunes(f func(rune) rune) Value {
	out := make([]rune, len(v.runes))
	for i, r := range v.runes {
		out[i] = f(r)
	}
	return v.derive(out)
}

// lookupEncoding resolves a canonical tag to a codec. UTF-8 and ASCII
// are handled by the caller. ISO-8859-1 is the exact Latin-1 table, not
// the windows-1252 superset the HTML index maps it to.
func lookupEncoding(tag string) (encoding.Encoding, error) {
	switch tag {
	case "UTF-16":
		return xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM), nil
	case "UTF-16LE":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM), nil
	case "UTF-16BE":
		return xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM), nil
	case "ISO-8859-1":
		return charmap.ISO8859_1, nil
	}
	return htmlindex.Get(tag)
}

// NewFromBytes decodes raw bytes in the given encoding. ASCII input must
// not contain bytes above 0x7F and UTF-8 input must be valid; unknown tags
// fail with ENCODING_ERROR.
func NewFromBytes(raw []byte, enc string) (Value, error) {
	tag := canonicalEncoding(enc)

	switch tag {
	case "ASCII":
		for i, b := range raw {
			if b > unicode.MaxASCII {
				return Value{}, mdwerrors.EncodingError("NewFromBytes", tag,
					fmt.Errorf("byte 0x%02x at offset %d is not ASCII", b, i))
			}
		}
		return New(string(raw), tag), nil
	case DefaultEncoding:
		if !utf8.Valid(raw) {
			return Value{}, mdwerrors.EncodingError("NewFromBytes", tag,
				fmt.Errorf("invalid UTF-8 sequence"))
		}
		return New(string(raw), tag), nil
	}

	e, err := lookupEncoding(tag)
	if err != nil || e == nil {
		return Value{}, mdwerrors.EncodingError("NewFromBytes", tag, nil)
	}

	decoded, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return Value{}, mdwerrors.EncodingError("NewFromBytes", tag, err)
	}
	return New(string(decoded), tag), nil
}

// Bytes encodes the value in its own encoding. Codepoints the encoding
// cannot represent fail with ENCODING_ERROR.
func (v Value) Bytes() ([]byte, error) {
	tag := v.Encoding()

	switch tag {
	case DefaultEncoding:
		return []byte(v.String()), nil
	case "ASCII":
		out := make([]byte, 0, len(v.runes))
		for _, r := range v.runes {
			if r > unicode.MaxASCII {
				return nil, mdwerrors.EncodingError("Bytes", tag,
					fmt.Errorf("codepoint %U is not ASCII", r))
			}
			out = append(out, byte(r))
		}
		return out, nil
	}

	e, err := lookupEncoding(tag)
	if err != nil || e == nil {
		return nil, mdwerrors.EncodingError("Bytes", tag, nil)
	}

	out, err := e.NewEncoder().Bytes([]byte(v.String()))
	if err != nil {
		return nil, mdwerrors.EncodingError("Bytes", tag, err)
	}
	return out, nil
}
