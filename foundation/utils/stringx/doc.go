// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides Value, an immutable string of
//              Unicode codepoints with a fluent transformation API.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-03-02 v0.3.0: Rewritten around the immutable Value type

// Package stringx provides an immutable, codepoint-aware string value.
//
// Package: stringx
// Title: Immutable Codepoint Strings for the stringy Foundation
// Description: Value holds a decoded sequence of Unicode codepoints and the
//              tag of the encoding it came from. Every operation addresses
//              codepoints, never bytes, and returns a new Value.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// # Overview
//
// A Value is created once from text and never changes afterwards:
//
//	v := stringx.New("fòô bàř")
//	v.Len()                 // 7
//	v.At(-1).String()       // "ř"
//	v.ToUpperCase()         // "FÒÔ BÀŘ", v itself is unchanged
//
// Construction from other Go values goes through From, which accepts a
// closed set of text-convertible types and fails with INVALID_INPUT for
// anything else:
//
//	v, err := stringx.From(1.18)   // "1.18"
//	_, err = stringx.From([]int{1}) // INVALID_INPUT
//
// Raw bytes in another encoding are decoded with NewFromBytes, which uses
// the golang.org/x/text encoding registry:
//
//	v, err := stringx.NewFromBytes(latin1, "ISO-8859-1")
//
// # Indexing
//
// Negative indexes count from the end, so -1 is the last codepoint. At
// and Substr return the empty value when out of range; Get reports
// INDEX_OUT_OF_RANGE instead. Set and Delete exist only to fail with
// IMMUTABLE_VIOLATION.
//
// # Case styles
//
// Case-style conversions split the value into word, digit-run and
// separator tokens in a single scan:
//
//	stringx.New("string_with1number").Camelize()  // "stringWith1Number"
//	stringx.New("TestDCase").Dasherize()          // "test-d-case"
//	stringx.New("i like to watch DVDs").Titleize("to") // "I Like to Watch Dvds"
//
// # Padding and truncation
//
// Lengths are codepoint counts. Pad strings repeat cyclically and a
// truncation suffix counts against the requested length:
//
//	stringx.New("foo bar").PadLeft(9, "_*")           // "_*foo bar"
//	stringx.New("Test foo bar").SafeTruncate(11, "")  // "Test foo"
//
// # Collaborators
//
// Regular expressions, transliteration, HTML entities, sanitization and
// e-mail validation are reached through the Matcher, Transliterator,
// HTMLCodec, Sanitizer and EmailValidator interfaces. Passing nil selects
// the default implementation, except for Sanitizer, which has none.
//
// # Errors
//
// Failures are *error.Error values from the foundation error package with
// one of the codes INVALID_INPUT, INDEX_OUT_OF_RANGE, IMMUTABLE_VIOLATION,
// INVALID_ARGUMENT, INVALID_PATTERN, ENCODING_ERROR or
// MISSING_COLLABORATOR.
//
// # Thread Safety
//
// Values are safe to share between goroutines. The only shared mutable
// state is the compiled-pattern cache of the default Matcher, which is
// guarded by a sync.RWMutex.
//
// # See Also
//
//   - golang.org/x/text/cases: case folding for ignore-case search
//   - Package errors: module-scoped error constructors
package stringx
