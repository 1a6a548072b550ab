// File: runes_test.go
// Title: Unit Tests for Codepoint Addressing
// Description: Tests At, Substr, Slice, First and Last with positive,
//              negative and out-of-range positions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestAt(t *testing.T) {
	tests := []struct {
		input    string
		index    int
		expected string
	}{
		{"foo bar", 0, "f"},
		{"foo bar", 1, "o"},
		{"foo bar", 6, "r"},
		{"foo bar", 7, ""},
		{"fòô bàř", 1, "ò"},
		{"fòô bàř", 6, "ř"},
		{"fòô bàř", -1, "ř"},
		{"fòô bàř", -7, "f"},
		{"fòô bàř", -8, ""},
		{"", 0, ""},
	}

	for _, tt := range tests {
		if got := New(tt.input).At(tt.index).String(); got != tt.expected {
			t.Errorf("At(%q, %d) = %q; want %q", tt.input, tt.index, got, tt.expected)
		}
	}
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		start    int
		length   []int
		expected string
	}{
		{"whole", "foo bar", 0, nil, "foo bar"},
		{"to end", "foo bar", 4, nil, "bar"},
		{"window", "foo bar", 2, []int{3}, "o b"},
		{"zero length", "foo bar", 4, []int{0}, ""},
		{"unicode to end", "fòô bàř", 4, nil, "bàř"},
		{"unicode window", "fòô bàř", 2, []int{3}, "ô b"},
		{"negative start", "fòô bàř", -3, nil, "bàř"},
		{"negative start window", "fòô bàř", -3, []int{2}, "bà"},
		{"negative length", "fòô bàř", 1, []int{-2}, "òô b"},
		{"start past end", "fòô", 5, nil, ""},
		{"negative start past beginning", "fòô", -10, []int{2}, "fò"},
		{"length past end", "fòô", 1, []int{10}, "òô"},
		{"negative length before start", "fòô", 2, []int{-2}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.input).Substr(tt.start, tt.length...).String()
			if got != tt.expected {
				t.Errorf("Substr(%q, %d, %v) = %q; want %q", tt.input, tt.start, tt.length, got, tt.expected)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		input      string
		start, end int
		expected   string
	}{
		{"foobar", 0, 6, "foobar"},
		{"foobar", 0, 5, "fooba"},
		{"foobar", 3, 0, ""},
		{"foobar", 3, 2, ""},
		{"foobar", 3, 5, "ba"},
		{"foobar", 3, -1, "ba"},
		{"fòôbàř", 0, 6, "fòôbàř"},
		{"fòôbàř", 0, 5, "fòôbà"},
		{"fòôbàř", 3, 5, "bà"},
		{"fòôbàř", 3, -1, "bà"},
		{"0123456789", -3, 5, "789"},
		{"0123456789", -3, -1, "78"},
		{"0123456789", -3, -5, ""},
		{"0123456789", -5, 2, "56789"},
	}

	for _, tt := range tests {
		if got := New(tt.input).Slice(tt.start, tt.end).String(); got != tt.expected {
			t.Errorf("Slice(%q, %d, %d) = %q; want %q", tt.input, tt.start, tt.end, got, tt.expected)
		}
	}

	if got := New("fòôbàř").SliceFrom(2).String(); got != "ôbàř" {
		t.Errorf("SliceFrom(2) = %q; want \"ôbàř\"", got)
	}
}

func TestFirstLast(t *testing.T) {
	tests := []struct {
		n           int
		first, last string
	}{
		{-5, "", ""},
		{0, "", ""},
		{1, "f", "ř"},
		{3, "fòô", "bàř"},
		{7, "fòô bàř", "fòô bàř"},
		{8, "fòô bàř", "fòô bàř"},
	}

	v := New("fòô bàř")
	for _, tt := range tests {
		if got := v.First(tt.n).String(); got != tt.first {
			t.Errorf("First(%d) = %q; want %q", tt.n, got, tt.first)
		}
		if got := v.Last(tt.n).String(); got != tt.last {
			t.Errorf("Last(%d) = %q; want %q", tt.n, got, tt.last)
		}
	}
}

func TestSubstrDoesNotLeakCapacity(t *testing.T) {
	v := New("abcdef")
	head := v.Substr(0, 2)
	_ = head.Append("XYZ")
	if v.String() != "abcdef" {
		t.Errorf("receiver changed to %q", v.String())
	}
}
