// File: benchmark_test.go
// Title: Performance Benchmarks for stringx
// Description: Benchmarks for construction, indexing, case conversion,
//              search, padding and pattern operations on ASCII and
//              multibyte input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2025-03-02 v0.2.0: Benchmarks moved to the Value API

package stringx

import (
	"strings"
	"testing"
)

var (
	benchASCII   = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	benchUnicode = strings.Repeat("Fòô bàř ΣΥΓΓΡΑΦΈΑΣ перевірка 漢字. ", 20)
)

func BenchmarkNew(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(benchUnicode)
	}
}

func BenchmarkAt(b *testing.B) {
	v := New(benchUnicode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.At(i%v.Len() - v.Len()/2)
	}
}

func BenchmarkCamelize(b *testing.B) {
	inputs := []Value{New("string_with1number"), New("ServeHTTP"), New(benchASCII)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = inputs[i%len(inputs)].Camelize()
	}
}

func BenchmarkDasherize(b *testing.B) {
	v := New(benchUnicode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Dasherize()
	}
}

func BenchmarkIndexOf(b *testing.B) {
	v := New(benchASCII)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.IndexOf("lazy dog", 100)
	}
}

func BenchmarkIndexOfIgnoreCase(b *testing.B) {
	v := New(benchUnicode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.IndexOfIgnoreCase("συγγραφέας", 0)
	}
}

func BenchmarkReplace(b *testing.B) {
	v := New(benchASCII)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Replace("fox", "cat", false)
	}
}

func BenchmarkPadBoth(b *testing.B) {
	v := New("fòô bàř")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.PadBoth(64, "¬øÿ")
	}
}

func BenchmarkSafeTruncate(b *testing.B) {
	v := New(benchUnicode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.SafeTruncate(100, "...")
	}
}

func BenchmarkLongestCommonSubstring(b *testing.B) {
	v := New(benchASCII[:200])
	other := benchASCII[50:250]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.LongestCommonSubstring(other)
	}
}

func BenchmarkRegexReplaceCached(b *testing.B) {
	v := New(benchASCII)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.RegexReplace(`[[:space:]]+`, " ", nil)
	}
}

func BenchmarkSlugify(b *testing.B) {
	v := New(benchUnicode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Slugify("-", "en", nil)
	}
}
