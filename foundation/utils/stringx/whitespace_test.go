// File: whitespace_test.go
// Title: Unit Tests for Whitespace and Line Operations
// Description: Tests trimming, collapsing, tab conversion, line and
//              separator splitting, typographic tidying and word wrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package stringx

import (
	"slices"
	"testing"
)

func valueStrings(vs []Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(Value, ...string) Value
		input    string
		chars    []string
		expected string
	}{
		{"Trim", Value.Trim, "  foo   bar  ", nil, "foo   bar"},
		{"Trim tabs", Value.Trim, "\n\t foo bar \n\t", nil, "foo bar"},
		{"Trim chars", Value.Trim, "\n\t foo bar \n\t", []string{"\n\t"}, " foo bar "},
		{"Trim narrow nbsp", Value.Trim, " fòô ", nil, "fòô"},
		{"Trim math space", Value.Trim, "  fòô  ", nil, "fòô"},
		{"Trim en quad run", Value.Trim, "           fòô", nil, "fòô"},
		{"TrimLeft", Value.TrimLeft, "  fòô   bàř  ", nil, "fòô   bàř  "},
		{"TrimLeft chars", Value.TrimLeft, "--foo bar", []string{"-"}, "foo bar"},
		{"TrimLeft multibyte chars", Value.TrimLeft, "òòfòô bàř", []string{"ò"}, "fòô bàř"},
		{"TrimRight", Value.TrimRight, "  fòô   bàř  ", nil, "  fòô   bàř"},
		{"TrimRight chars", Value.TrimRight, "foo bar--", []string{"-"}, "foo bar"},
		{"TrimRight multibyte chars", Value.TrimRight, "fòô bàřřř", []string{"ř"}, "fòô bà"},
		{"Trim all", Value.Trim, "   ", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(New(tt.input), tt.chars...).String(); got != tt.expected {
				t.Errorf("%q = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  foo   bar  ", "foo bar"},
		{"test string", "test string"},
		{"   Ο     συγγραφέας  ", "Ο συγγραφέας"},
		{" 123 ", "123"},
		{" ", ""},
		{"           ", ""},
		{" ", ""},
		{" ", ""},
		{"　", ""},
		{"  1  2  3　　", "1 2 3"},
		{" ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := New(tt.input).CollapseWhitespace().String(); got != tt.expected {
			t.Errorf("CollapseWhitespace(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"foobar", "foobar"},
		{"foo bar", "foobar"},
		{"\n\t foo bar \n\t", "foobar"},
		{"  fòô   bàř  ", "fòôbàř"},
		{"　Ο συγγραφέας ", "Οσυγγραφέας"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := New(tt.input).StripWhitespace().String(); got != tt.expected {
			t.Errorf("StripWhitespace(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToSpacesToTabs(t *testing.T) {
	spaces := []struct {
		input    string
		tab      int
		expected string
	}{
		{"\tfoo\tbar\t", 4, "    foo    bar    "},
		{"\tfoo\tbar\t", 5, "     foo     bar     "},
		{"\t\tfoo\tbar\t", 2, "    foo  bar  "},
		{"\tfoo\tbar\t", 0, "foobar"},
		{"\tfoo\n\tbar", 4, "    foo\n    bar"},
		{"\tfòô\n\tbàř", 4, "    fòô\n    bàř"},
	}

	for _, tt := range spaces {
		if got := New(tt.input).ToSpaces(tt.tab).String(); got != tt.expected {
			t.Errorf("ToSpaces(%q, %d) = %q; want %q", tt.input, tt.tab, got, tt.expected)
		}
	}

	tabs := []struct {
		input    string
		tab      int
		expected string
	}{
		{"    foo    bar    ", 4, "\tfoo\tbar\t"},
		{"     foo     bar     ", 5, "\tfoo\tbar\t"},
		{"    foo  bar  ", 2, "\t\tfoo\tbar\t"},
		{"    foo\n    bar", 4, "\tfoo\n\tbar"},
		{"    fòô\n    bàř", 4, "\tfòô\n\tbàř"},
		{"  foo", 0, "  foo"},
	}

	for _, tt := range tabs {
		if got := New(tt.input).ToTabs(tt.tab).String(); got != tt.expected {
			t.Errorf("ToTabs(%q, %d) = %q; want %q", tt.input, tt.tab, got, tt.expected)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{""}},
		{"\r\n", []string{"", ""}},
		{"foo\nbar", []string{"foo", "bar"}},
		{"foo\rbar", []string{"foo", "bar"}},
		{"foo\r\nbar", []string{"foo", "bar"}},
		{"foo\r\n\r\nbar", []string{"foo", "", "bar"}},
		{"foo\r\nbar\r\n", []string{"foo", "bar", ""}},
		{"\r\nfoo\r\nbar", []string{"", "foo", "bar"}},
		{"fòô\n\rbàř", []string{"fòô", "bàř"}},
		{"fòô\r\n\r\nbàř", []string{"fòô", "", "bàř"}},
		{"1111111111111111111", []string{"1111111111111111111"}},
	}

	for _, tt := range tests {
		got := valueStrings(New(tt.input).Lines())
		if !slices.Equal(got, tt.expected) {
			t.Errorf("Lines(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		sep      string
		limit    int
		expected []string
	}{
		{"foo,bar,baz", "", 0, []string{"foo,bar,baz"}},
		{"foo,bar,baz", "-", 0, []string{"foo,bar,baz"}},
		{"foo,bar,baz", ",", 0, []string{"foo", "bar", "baz"}},
		{"foo,bar,baz", ",", -1, []string{"foo", "bar", "baz"}},
		{"foo,bar,baz", ",", 1, []string{"foo"}},
		{"foo,bar,baz", ",", 2, []string{"foo", "bar"}},
		{"foo,bar,baz", ",", 3, []string{"foo", "bar", "baz"}},
		{"foo,bar,baz", ",", 10, []string{"foo", "bar", "baz"}},
		{"fòô,bàř,baz", ",", 2, []string{"fòô", "bàř"}},
		{"fòô::bàř", "::", 0, []string{"fòô", "bàř"}},
		{",", ",", 0, []string{"", ""}},
	}

	for _, tt := range tests {
		got := valueStrings(New(tt.input).Split(tt.sep, tt.limit))
		if !slices.Equal(got, tt.expected) {
			t.Errorf("Split(%q, %q, %d) = %q; want %q", tt.input, tt.sep, tt.limit, got, tt.expected)
		}
	}
}

func TestTidy(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"“I see…”", `"I see..."`},
		{"‘This too’", "'This too'"},
		{"test—dash", "test-dash"},
		{"Ο συγγραφέας είπε…", "Ο συγγραφέας είπε..."},
		{"«bien»", `"bien"`},
	}

	for _, tt := range tests {
		if got := New(tt.input).Tidy().String(); got != tt.expected {
			t.Errorf("Tidy(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestShortenAfterWord(t *testing.T) {
	tests := []struct {
		input    string
		length   int
		suffix   string
		expected string
	}{
		{"this is a test", 5, "...", "this..."},
		{"this is öäü-foo test", 8, "...", "this is..."},
		{"fòô bàř fòô", 6, "", "fòô"},
		{"fòô bàř fòô", 8, "", "fòô bàř"},
		{"fòô bàř", 20, "…", "fòô bàř"},
		{"fòô bàř", 0, "…", ""},
	}

	for _, tt := range tests {
		if got := New(tt.input).ShortenAfterWord(tt.length, tt.suffix).String(); got != tt.expected {
			t.Errorf("ShortenAfterWord(%q, %d, %q) = %q; want %q", tt.input, tt.length, tt.suffix, got, tt.expected)
		}
	}
}

func TestLineWrapAfterWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		brk      string
		cut      bool
		expected string
	}{
		{"fits", "fòô bàř", 20, "\n", false, "fòô bàř"},
		{"wraps at spaces", "the quick brown fox", 10, "\n", false, "the quick\nbrown fox"},
		{"custom break", "the quick brown fox", 10, "<br>", false, "the quick<br>brown fox"},
		{"empty break", "the quick brown fox", 10, "", false, "the quick\nbrown fox"},
		{"long word kept", "abcdefghij klm", 4, "\n", false, "abcdefghij\nklm"},
		{"long word cut", "abcdefghij klm", 4, "\n", true, "abcd\nefgh\nij\nklm"},
		{"per line", "a b\nc d", 1, "\n", false, "a\nb\nc\nd"},
		{"zero width", "a b c", 0, "\n", false, "a b c"},
		{"multibyte", "fòô bàř fòô", 7, "\n", false, "fòô bàř\nfòô"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.input).LineWrapAfterWord(tt.width, tt.brk, tt.cut).String()
			if got != tt.expected {
				t.Errorf("LineWrapAfterWord(%q, %d, %q, %v) = %q; want %q",
					tt.input, tt.width, tt.brk, tt.cut, got, tt.expected)
			}
		})
	}
}
