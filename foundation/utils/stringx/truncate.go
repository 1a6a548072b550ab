// File: truncate.go
// Title: Truncation
// Description: Hard and word-boundary truncation in codepoints. The suffix
//              counts against the length budget.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-10
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: Clip suffixes longer than the length budget

package stringx

// truncateBudget returns how many codepoints of the value fit before the
// suffix and the suffix to append, clipped to length when it alone is
// longer. ok is false when no truncation is needed.
func (v Value) truncateBudget(length int, suffix string) (budget int, tail string, ok bool) {
	length = max(length, 0)
	if length >= len(v.runes) {
		return 0, "", false
	}
	sr := []rune(suffix)
	if len(sr) > length {
		return 0, string(sr[:length]), true
	}
	return length - len(sr), suffix, true
}

// Truncate cuts the value so that, with suffix appended, it is at most
// length codepoints long. Values that already fit are returned as is. A
// suffix longer than length is itself cut to length.
func (v Value) Truncate(length int, suffix string) Value {
	budget, tail, ok := v.truncateBudget(length, suffix)
	if !ok {
		return v
	}
	return v.First(budget).Append(tail)
}

// SafeTruncate is Truncate without splitting a word: a cut inside a word
// backs up to the last space before it. Text without spaces is cut hard.
func (v Value) SafeTruncate(length int, suffix string) Value {
	budget, tail, ok := v.truncateBudget(length, suffix)
	if !ok {
		return v
	}
	if budget == len(v.runes) || v.runes[budget] == ' ' {
		return v.First(budget).Append(tail)
	}
	for i := budget - 1; i >= 0; i-- {
		if v.runes[i] == ' ' {
			budget = i
			break
		}
	}
	return v.First(budget).Append(tail)
}
