// File: names.go
// Title: Personal Name Capitalization
// Description: Capitalizes personal names word by word while keeping
//              lowercase nobiliary particles and prefixed surnames intact.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package stringx

import (
	"slices"
	"strings"
)

// nameParticles are kept lowercase when they form a whole name part.
var nameParticles = []string{
	"ab", "af", "al", "and", "ap", "bint", "binte", "da", "de", "del",
	"den", "der", "di", "dit", "ibn", "la", "mac", "nic", "of", "ter",
	"the", "und", "van", "von", "y", "zu",
}

// namePrefixes mark name parts that carry their own capitalization.
var namePrefixes = []string{"al-", "d'", "ff", "l'", "mac", "mc", "nic"}

// CapitalizePersonalName collapses whitespace and uppercases the first
// codepoint of every name part, first between spaces and then between
// hyphens. Particles such as "van" or "ibn" and parts starting with a
// prefix such as "mc" or "d'" are left unchanged.
func (v Value) CapitalizePersonalName() Value {
	s := v.CollapseWhitespace().String()
	s = v.capitalizeNameParts(s, " ")
	s = v.capitalizeNameParts(s, "-")
	return v.derive([]rune(s))
}

func (v Value) capitalizeNameParts(names, delimiter string) string {
	parts := strings.Split(names, delimiter)
	for i, part := range parts {
		if keepNamePart(part, delimiter == "-") {
			continue
		}
		parts[i] = v.derive([]rune(part)).UpperCaseFirst().String()
	}
	return strings.Join(parts, delimiter)
}

func keepNamePart(part string, particlePrefixes bool) bool {
	if slices.Contains(nameParticles, part) {
		return true
	}
	hasPrefix := func(p string) bool { return strings.HasPrefix(part, p) }
	if particlePrefixes && slices.ContainsFunc(nameParticles, hasPrefix) {
		return true
	}
	return slices.ContainsFunc(namePrefixes, hasPrefix)
}
