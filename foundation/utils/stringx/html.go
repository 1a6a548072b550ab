// File: html.go
// Title: Markup and Slug Helpers
// Description: Collaborator backed HTML coding, sanitization, slugs and
//              ASCII folding, plus tag stripping with the x/net/html
//              tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

var (
	emptyTagPattern   = regexp.MustCompile(`(?i)<[^/>]*>\s*</[^>]*>`)
	mediaQueryPattern = regexp.MustCompile(`(?is)@media\s+(?:only\s)?(?:[\s{(]|screen|all)\s?[^{]+\{.*?\}\s*\}\s*`)
	htmlBreakPattern  = regexp.MustCompile(`(?is)\r\n|\r|\n|<br.*?/?>`)
)

func orDefaultCodec(c HTMLCodec) HTMLCodec {
	if c == nil {
		return StdHTMLCodec{}
	}
	return c
}

func orDefaultTransliterator(t Transliterator) Transliterator {
	if t == nil {
		return FoldingTransliterator{}
	}
	return t
}

// HTMLEncode escapes &, ", < and > with the codec.
func (v Value) HTMLEncode(c HTMLCodec) Value {
	return v.derive([]rune(orDefaultCodec(c).Encode(v.String(), false)))
}

// HTMLDecode resolves entities with the codec.
func (v Value) HTMLDecode(c HTMLCodec) Value {
	return v.derive([]rune(orDefaultCodec(c).Decode(v.String())))
}

// HTMLEscape escapes markup characters including the single quote.
func (v Value) HTMLEscape() Value {
	return v.derive([]rune(StdHTMLCodec{}.Encode(v.String(), true)))
}

// RemoveXSS runs the value through s. There is no default sanitizer, so a
// nil s fails with MISSING_COLLABORATOR.
func (v Value) RemoveXSS(s Sanitizer) (Value, error) {
	if s == nil {
		return Value{}, mdwerrors.MissingCollaborator("RemoveXSS", "Sanitizer")
	}
	return v.derive([]rune(s.Sanitize(v.String()))), nil
}

// allowedTags accepts names either bare ("b") or in tag form ("<b><i>").
func allowedTags(allowable []string) map[string]bool {
	set := make(map[string]bool)
	for _, a := range allowable {
		for _, name := range strings.FieldsFunc(strings.ToLower(a), func(r rune) bool {
			return r == '<' || r == '>' || r == '/' || r == ',' || unicode.IsSpace(r)
		}) {
			set[name] = true
		}
	}
	return set
}

// RemoveHTML strips tags, comments and doctypes but keeps text and the
// tags named in allowable.
func (v Value) RemoveHTML(allowable ...string) Value {
	allowed := allowedTags(allowable)
	z := html.NewTokenizer(strings.NewReader(v.String()))

	var b strings.Builder
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return v.derive([]rune(b.String()))
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			if allowed[string(name)] {
				b.WriteString(raw)
			}
		}
	}
}

// RemoveHTMLBreak replaces line breaks and <br> tags with repl.
func (v Value) RemoveHTMLBreak(repl string) Value {
	return v.derive([]rune(htmlBreakPattern.ReplaceAllLiteralString(v.String(), repl)))
}

// StripEmptyHTMLTags removes element pairs with only whitespace inside.
func (v Value) StripEmptyHTMLTags() Value {
	return v.derive([]rune(emptyTagPattern.ReplaceAllString(v.String(), "")))
}

// StripCSSMediaQueries removes @media blocks.
func (v Value) StripCSSMediaQueries() Value {
	return v.derive([]rune(mediaQueryPattern.ReplaceAllString(v.String(), "")))
}

// ToASCII transliterates the value for language. Codepoints left outside
// ASCII are dropped when removeUnsupported is set; non-ASCII whitespace
// becomes a plain space.
func (v Value) ToASCII(language string, removeUnsupported bool, t Transliterator) Value {
	folded := orDefaultTransliterator(t).Transliterate(v.String(), language)

	out := make([]rune, 0, len(folded))
	for _, r := range folded {
		switch {
		case r <= unicode.MaxASCII:
			out = append(out, r)
		case isSpace(r):
			out = append(out, ' ')
		case !removeUnsupported:
			out = append(out, r)
		}
	}
	return v.derive(out)
}

// Slugify turns the value into a lowercase URL slug: transliterated
// letters and digits, words joined by sep, quotes dropped and every other
// character treated as a word break.
func (v Value) Slugify(sep, language string, t Transliterator) Value {
	folded := orDefaultTransliterator(t).Transliterate(v.String(), language)

	var (
		words   []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range folded {
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			current.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '"' || r == '`' || r == '’':
			continue
		default:
			flush()
		}
	}
	flush()

	return v.derive([]rune(strings.Join(words, sep)))
}
