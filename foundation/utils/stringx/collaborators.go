// File: collaborators.go
// Title: External Collaborators
// Description: Narrow interfaces for the services the value type consumes
//              but does not implement itself, with their default
//              implementations: transliteration, HTML entity coding,
//              sanitization and e-mail validation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"html"
	"net/mail"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matcher runs regular expressions on behalf of a value.
type Matcher interface {
	MatchString(pattern, s string) (bool, error)
	ReplaceAllString(pattern, s, repl string) (string, error)
	Split(pattern, s string, n int) ([]string, error)
}

// Transliterator maps text to its closest ASCII spelling.
type Transliterator interface {
	Transliterate(text, language string) string
}

// HTMLCodec converts between text and HTML entities.
type HTMLCodec interface {
	Encode(s string, quotes bool) string
	Decode(s string) string
}

// Sanitizer removes script injection from markup.
type Sanitizer interface {
	Sanitize(s string) string
}

// EmailValidator decides whether s is an e-mail address.
type EmailValidator interface {
	ValidEmail(s string) bool
}

// SanitizerFunc adapts a function to Sanitizer.
type SanitizerFunc func(string) string

// Sanitize calls f(s).
func (f SanitizerFunc) Sanitize(s string) string {
	return f(s)
}

// MailAddressValidator accepts bare RFC 5322 addresses.
type MailAddressValidator struct{}

// ValidEmail reports whether s parses as an address without display name.
func (MailAddressValidator) ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}

// StdHTMLCodec encodes the five markup characters and decodes every
// HTML5 entity.
type StdHTMLCodec struct{}

var (
	htmlCompatReplacer = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	htmlQuotesReplacer = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "'", "&#039;", "<", "&lt;", ">", "&gt;")
)

// Encode escapes &, ", < and >, and also ' when quotes is set.
func (StdHTMLCodec) Encode(s string, quotes bool) string {
	if quotes {
		return htmlQuotesReplacer.Replace(s)
	}
	return htmlCompatReplacer.Replace(s)
}

// Decode resolves named and numeric entities.
func (StdHTMLCodec) Decode(s string) string {
	return html.UnescapeString(s)
}

// FoldingTransliterator strips diacritics by canonical decomposition and
// maps letters without a decomposition through fixed tables. Cyrillic is
// romanized before decomposition so that й and ё keep their own spelling.
// Codepoints it cannot map are returned unchanged.
type FoldingTransliterator struct{}

// languageFolds run before decomposition so that umlauts expand instead of
// losing their marks.
var languageFolds = map[string]map[rune]string{
	"de": {
		'ä': "ae", 'ö': "oe", 'ü': "ue", 'Ä': "Ae", 'Ö': "Oe", 'Ü': "Ue",
	},
}

var letterFolds = map[rune]string{
	'ß': "ss", 'ẞ': "SS", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O", 'ł': "l", 'Ł': "L", 'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D", 'þ': "th", 'Þ': "Th", 'ı': "i", 'ħ': "h",
	'Ħ': "H", 'ŧ': "t", 'Ŧ': "T",
}

var cyrillicFolds = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'є': "ye", 'і': "i", 'ї': "yi", 'ґ': "g",
}

var greekFolds = map[rune]string{
	'α': "a", 'β': "b", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z", 'η': "i",
	'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "ks",
	'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "y",
	'φ': "f", 'χ': "x", 'ψ': "ps", 'ω': "o",
}

func init() {
	for _, table := range []map[rune]string{cyrillicFolds, greekFolds} {
		for lower, ascii := range table {
			upper := unicode.ToUpper(lower)
			if upper == lower {
				continue
			}
			if _, ok := table[upper]; !ok {
				table[upper] = upperFirstASCII(ascii)
			}
		}
	}
	for r, ascii := range greekFolds {
		letterFolds[r] = ascii
	}
}

func upperFirstASCII(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func foldWith(s string, table map[rune]string) string {
	if len(table) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ascii, ok := table[r]; ok {
			b.WriteString(ascii)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Transliterate folds text for the given language. Region suffixes such as
// "de_DE" or "de-AT" select the base language table.
func (FoldingTransliterator) Transliterate(text, language string) string {
	lang := strings.ToLower(language)
	if i := strings.IndexAny(lang, "_-"); i >= 0 {
		lang = lang[:i]
	}
	text = foldWith(text, languageFolds[lang])
	text = foldWith(text, cyrillicFolds)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, text); err == nil {
		text = stripped
	}
	return foldWith(text, letterFolds)
}
