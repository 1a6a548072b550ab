// File: random.go
// Title: Secure Random Text
// Description: Random strings, passwords and identifiers drawn from
//              crypto/rand, and the value operations that append them or
//              shuffle a value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2025-02-10 v0.2.0: Codepoint charsets, Append* value operations, UUIDs

package stringx

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersUppercase + LettersLowercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Human-readable characters (excluding visually similar characters like 0, O, l, 1)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// Special characters for password generation
	SpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

func randomIndex(n int) (int, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(i.Int64()), nil
}

// RandomString returns length codepoints drawn uniformly from charset.
// An empty charset means Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	chars := []rune(charset)
	result := make([]rune, length)
	for i := range result {
		idx, err := randomIndex(len(chars))
		if err != nil {
			return "", err
		}
		result[i] = chars[idx]
	}
	return string(result), nil
}

// RandomPassword returns a password of the given length with at least one
// lowercase letter, uppercase letter, digit and special character when the
// length allows it.
func RandomPassword(length int) (string, error) {
	categories := []string{LettersLowercase, LettersUppercase, Digits, SpecialChars}
	if length < len(categories) {
		return RandomString(length, Alphanumeric+SpecialChars)
	}

	var b strings.Builder
	for _, category := range categories {
		c, err := RandomString(1, category)
		if err != nil {
			return "", err
		}
		b.WriteString(c)
	}

	rest, err := RandomString(length-len(categories), Alphanumeric+SpecialChars)
	if err != nil {
		return "", err
	}
	b.WriteString(rest)

	shuffled, err := shuffleRunes([]rune(b.String()))
	if err != nil {
		return "", err
	}
	return string(shuffled), nil
}

// shuffleRunes permutes a copy of rs with a Fisher-Yates pass.
func shuffleRunes(rs []rune) ([]rune, error) {
	out := make([]rune, len(rs))
	copy(out, rs)
	for i := len(out) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Shuffle returns the codepoints in random order.
func (v Value) Shuffle() (Value, error) {
	out, err := shuffleRunes(v.runes)
	if err != nil {
		return Value{}, err
	}
	return v.derive(out), nil
}

// AppendRandomString appends length random codepoints from charset.
func (v Value) AppendRandomString(length int, charset string) (Value, error) {
	s, err := RandomString(length, charset)
	if err != nil {
		return Value{}, err
	}
	return v.Append(s), nil
}

// AppendPassword appends a RandomPassword of the given length.
func (v Value) AppendPassword(length int) (Value, error) {
	s, err := RandomPassword(length)
	if err != nil {
		return Value{}, err
	}
	return v.Append(s), nil
}

// AppendUniqueIdentifier appends prefix followed by a random version 4
// UUID in its 32 digit hex form.
func (v Value) AppendUniqueIdentifier(prefix string) (Value, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Value{}, err
	}
	return v.Append(prefix, strings.ReplaceAll(id.String(), "-", "")), nil
}
