// File: inspect_test.go
// Title: Value Inspection Tests
// Description: Tests codepoint listing and the predicate summary.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package convert

import (
	"testing"

	"github.com/msto63/stringy/foundation/utils/stringx"
)

func TestCodepoints(t *testing.T) {
	cps := Codepoints(stringx.New("fò\n"))
	if len(cps) != 3 {
		t.Fatalf("Codepoints() returned %d entries; want 3", len(cps))
	}

	tests := []struct {
		i       int
		index   int
		neg     int
		hex     string
		display string
	}{
		{0, 0, -3, "U+0066", "f"},
		{1, 1, -2, "U+00F2", "ò"},
		{2, 2, -1, "U+000A", `'\n'`},
	}
	for _, tt := range tests {
		c := cps[tt.i]
		if c.Index != tt.index || c.Negative != tt.neg {
			t.Errorf("entry %d index = (%d, %d); want (%d, %d)", tt.i, c.Index, c.Negative, tt.index, tt.neg)
		}
		if c.Hex() != tt.hex {
			t.Errorf("entry %d Hex() = %q; want %q", tt.i, c.Hex(), tt.hex)
		}
		if c.Display() != tt.display {
			t.Errorf("entry %d Display() = %q; want %q", tt.i, c.Display(), tt.display)
		}
	}

	if got := Codepoints(stringx.New("")); len(got) != 0 {
		t.Errorf("Codepoints(\"\") = %v; want empty", got)
	}
}

func TestPredicates(t *testing.T) {
	lookup := func(ps []Predicate, name string) bool {
		for _, p := range ps {
			if p.Name == name {
				return p.Holds
			}
		}
		t.Fatalf("predicate %q missing", name)
		return false
	}

	tests := []struct {
		input string
		name  string
		want  bool
	}{
		{"fòôbàř", "alpha", true},
		{"fòô bàř", "alpha", false},
		{"  ", "blank", true},
		{"A102F", "hexadecimal", true},
		{"-12.5", "numeric", true},
		{`{"foo":"bar"}`, "json", true},
		{"<b>x</b>", "html", true},
		{"test@example.com", "email", true},
		{"FÒÔ", "uppercase", true},
		{"no", "boolean", false},
	}
	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.name, func(t *testing.T) {
			if got := lookup(Predicates(stringx.New(tt.input)), tt.name); got != tt.want {
				t.Errorf("%s(%q) = %v; want %v", tt.name, tt.input, got, tt.want)
			}
		})
	}
}
