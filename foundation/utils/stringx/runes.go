// File: runes.go
// Title: Codepoint Index
// Description: Index normalization and codepoint addressed access: At,
//              Substr, Slice, First and Last. Negative positions count from
//              the end in every operation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

// index resolves i against the length, counting negative values from the
// end. ok is false when the position does not address a codepoint.
func (v Value) index(i int) (idx int, ok bool) {
	n := len(v.runes)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// runeAt returns the codepoint at i, or false when i is out of range.
func (v Value) runeAt(i int) (rune, bool) {
	idx, ok := v.index(i)
	if !ok {
		return 0, false
	}
	return v.runes[idx], true
}

// bounds converts a start and optional length into a half-open range.
// A negative start counts from the end and is clamped to 0; a negative
// length stops that many codepoints before the end.
func (v Value) bounds(start int, length *int) (from, to int) {
	n := len(v.runes)
	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		return n, n
	}

	end := n
	if length != nil {
		if *length < 0 {
			end = n + *length
		} else if start+*length < n {
			end = start + *length
		}
	}
	if end < start {
		return start, start
	}
	return start, end
}

// At returns the codepoint at i as a Value, or the empty value when i is
// out of range.
func (v Value) At(i int) Value {
	idx, ok := v.index(i)
	if !ok {
		return v.derive(nil)
	}
	return v.derive(v.runes[idx : idx+1 : idx+1])
}

// Substr returns up to length codepoints starting at start. Omitting length
// returns everything to the end.
func (v Value) Substr(start int, length ...int) Value {
	var lp *int
	if len(length) > 0 {
		lp = &length[0]
	}
	from, to := v.bounds(start, lp)
	return v.derive(v.runes[from:to:to])
}

// Slice returns the codepoints from start up to, but not including, end.
// A negative end drops that many codepoints from the end. A non-negative
// end is measured against start as given: end <= start yields the empty
// value, otherwise Slice is Substr(start, end-start). With a negative
// start that length counts from the resolved position, so on a value of
// ten codepoints Slice(-3, 5) returns the last three.
func (v Value) Slice(start, end int) Value {
	if end >= 0 && end <= start {
		return v.derive(nil)
	}
	if end < 0 {
		return v.Substr(start, end)
	}
	return v.Substr(start, end-start)
}

// SliceFrom returns the codepoints from start to the end.
func (v Value) SliceFrom(start int) Value {
	return v.Substr(start)
}

// First returns the first n codepoints.
func (v Value) First(n int) Value {
	if n <= 0 {
		return v.derive(nil)
	}
	return v.Substr(0, n)
}

// Last returns the last n codepoints.
func (v Value) Last(n int) Value {
	if n <= 0 {
		return v.derive(nil)
	}
	return v.Substr(-n)
}
