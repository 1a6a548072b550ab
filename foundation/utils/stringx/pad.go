// File: pad.go
// Title: Padding Engine
// Description: Codepoint-counted padding with cyclic pad strings on the
//              left, right or both sides, plus a reusable PadSpec.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

// PadSide selects where padding goes.
type PadSide string

const (
	PadLeft  PadSide = "left"
	PadRight PadSide = "right"
	PadBoth  PadSide = "both"
)

// ParsePadSide accepts "left", "right" or "both" in any case.
func ParsePadSide(s string) (PadSide, error) {
	switch side := PadSide(strings.ToLower(strings.TrimSpace(s))); side {
	case PadLeft, PadRight, PadBoth:
		return side, nil
	default:
		return "", mdwerrors.InvalidArgument("ParsePadSide", "pad side", s, "left, right or both")
	}
}

// PadSpec describes a padding to apply to many values.
type PadSpec struct {
	Length int
	Pad    string
	Side   PadSide
}

// Apply pads v with the length, pad and side of p.
func (p PadSpec) Apply(v Value) (Value, error) {
	return v.Pad(p.Length, p.Pad, p.Side)
}

// repeatTo cycles pad until it covers exactly n codepoints.
func repeatTo(pad []rune, n int) []rune {
	if n <= 0 {
		return nil
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = pad[i%len(pad)]
	}
	return out
}

// ApplyPadding adds left and right codepoints cut from repetitions of pad.
// An empty pad, or a total that does not grow the value, is a no-op.
func (v Value) ApplyPadding(left, right int, pad string) Value {
	p := []rune(pad)
	left, right = max(left, 0), max(right, 0)
	if len(p) == 0 || left+right == 0 {
		return v
	}
	out := make([]rune, 0, left+len(v.runes)+right)
	out = append(out, repeatTo(p, left)...)
	out = append(out, v.runes...)
	out = append(out, repeatTo(p, right)...)
	return v.derive(out)
}

// Pad grows the value to length codepoints on the given side. An unknown
// side fails with INVALID_ARGUMENT.
func (v Value) Pad(length int, pad string, side PadSide) (Value, error) {
	switch side {
	case PadLeft:
		return v.PadLeft(length, pad), nil
	case PadRight:
		return v.PadRight(length, pad), nil
	case PadBoth:
		return v.PadBoth(length, pad), nil
	default:
		return Value{}, mdwerrors.InvalidArgument("Pad", "pad side", side, "left, right or both")
	}
}

// PadLeft pads at the start up to length codepoints.
func (v Value) PadLeft(length int, pad string) Value {
	return v.ApplyPadding(length-len(v.runes), 0, pad)
}

// PadRight pads at the end up to length codepoints.
func (v Value) PadRight(length int, pad string) Value {
	return v.ApplyPadding(0, length-len(v.runes), pad)
}

// PadBoth splits the padding, giving the extra codepoint of an odd
// deficit to the right.
func (v Value) PadBoth(length int, pad string) Value {
	d := length - len(v.runes)
	if d <= 0 {
		return v
	}
	return v.ApplyPadding(d/2, d-d/2, pad)
}
