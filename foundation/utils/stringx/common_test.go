// File: common_test.go
// Title: Unit Tests for Longest Common Runs
// Description: Tests longest common prefix, suffix and substring on ASCII
//              and multibyte input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestLongestCommon(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(Value, string) Value
		input    string
		other    string
		expected string
	}{
		{"prefix", Value.LongestCommonPrefix, "foobar", "foo bar", "foo"},
		{"prefix equal", Value.LongestCommonPrefix, "foo bar", "foo bar", "foo bar"},
		{"prefix one", Value.LongestCommonPrefix, "foo bar", "far boo", "f"},
		{"prefix none", Value.LongestCommonPrefix, "toy car", "foo bar", ""},
		{"prefix empty", Value.LongestCommonPrefix, "foo bar", "", ""},
		{"prefix multibyte", Value.LongestCommonPrefix, "fòôbar", "fòô bar", "fòô"},
		{"prefix multibyte partial", Value.LongestCommonPrefix, "fòô bar", "fòr bar", "fò"},
		{"suffix", Value.LongestCommonSuffix, "foobar", "foo bar", "bar"},
		{"suffix equal", Value.LongestCommonSuffix, "foo bar", "foo bar", "foo bar"},
		{"suffix two", Value.LongestCommonSuffix, "foo bar", "boo far", "ar"},
		{"suffix none", Value.LongestCommonSuffix, "foo bad", "foo bar", ""},
		{"suffix empty", Value.LongestCommonSuffix, "foo bar", "", ""},
		{"suffix multibyte", Value.LongestCommonSuffix, "fòôbàř", "fòô bàř", "bàř"},
		{"suffix multibyte space", Value.LongestCommonSuffix, "fòô bàř", "fòr bàř", " bàř"},
		{"substring", Value.LongestCommonSubstring, "foobar", "foo bar", "foo"},
		{"substring equal", Value.LongestCommonSubstring, "foo bar", "foo bar", "foo bar"},
		{"substring middle", Value.LongestCommonSubstring, "foo bar", "boo far", "oo "},
		{"substring prefix", Value.LongestCommonSubstring, "foo bad", "foo bar", "foo ba"},
		{"substring empty", Value.LongestCommonSubstring, "foo bar", "", ""},
		{"substring receiver empty", Value.LongestCommonSubstring, "", "foo", ""},
		{"substring multibyte", Value.LongestCommonSubstring, "fòôbàř", "fòô bàř", "fòô"},
		{"substring multibyte tail", Value.LongestCommonSubstring, "fòô bàř", "fòr bàř", " bàř"},
		{"substring first tie", Value.LongestCommonSubstring, "toy car", "fòô bàř", " "},
		{"substring tie order", Value.LongestCommonSubstring, "abxcd", "cdxab", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(New(tt.input), tt.other).String(); got != tt.expected {
				t.Errorf("(%q, %q) = %q; want %q", tt.input, tt.other, got, tt.expected)
			}
		})
	}
}
