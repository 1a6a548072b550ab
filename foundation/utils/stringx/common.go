// File: common.go
// Title: Longest Common Prefix, Suffix and Substring
// Description: Codepoint comparisons between two values. The substring
//              search is the classic dynamic programming table kept to two
//              rows.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

// LongestCommonPrefix returns the longest leading run shared with other.
func (v Value) LongestCommonPrefix(other string) Value {
	o := []rune(other)
	n := 0
	for n < len(v.runes) && n < len(o) && v.runes[n] == o[n] {
		n++
	}
	return v.derive(v.runes[:n:n])
}

// LongestCommonSuffix returns the longest trailing run shared with other.
func (v Value) LongestCommonSuffix(other string) Value {
	o := []rune(other)
	n := 0
	for n < len(v.runes) && n < len(o) && v.runes[len(v.runes)-1-n] == o[len(o)-1-n] {
		n++
	}
	return v.derive(v.runes[len(v.runes)-n:])
}

// LongestCommonSubstring returns the longest run that occurs in both
// values. Ties go to the run that ends first in the receiver.
func (v Value) LongestCommonSubstring(other string) Value {
	a, b := v.runes, []rune(other)
	if len(a) == 0 || len(b) == 0 {
		return v.derive(nil)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	maxLen, end := 0, 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				cur[j] = 0
				continue
			}
			cur[j] = prev[j-1] + 1
			if cur[j] > maxLen {
				maxLen = cur[j]
				end = i
			}
		}
		prev, cur = cur, prev
	}

	return v.derive(v.runes[end-maxLen : end : end])
}
