// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package generator implements the password and passphrase generation core.
// This file defines the character classes, their base alphabets, and the
// logic for assembling the effective charset for a generation request.
package generator // import "github.com/InsolentFlunkey/password-generator/internal/generator"

import "strings"

// CharClass identifies one of the four supported character categories.
type CharClass int

const (
	Lowercase CharClass = iota
	Uppercase
	Digits
	Symbols
)

// classCount is the number of defined character classes.
const classCount = 4

// Base alphabets for each character class.
const (
	lowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	uppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet     = "0123456789"

	// DefaultSymbols is the symbol alphabet used when no custom override is set.
	DefaultSymbols = "!@#$%^&*()-_=+[]{};:,./?~"

	// ambiguousChars is the fixed denylist of visually confusable characters
	// removed from all alphabets when ExcludeAmbiguous is set.
	ambiguousChars = "Il1O0B8S5Z2QG6"
)

// String returns the lowercase name of the class, used in error messages
// and history records.
func (c CharClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// baseAlphabet returns the full (pre-exclusion) alphabet for a class.
// For Symbols, a non-blank custom override replaces the default set.
func (c CharClass) baseAlphabet(customSymbols string) string {
	switch c {
	case Lowercase:
		return lowercaseAlphabet
	case Uppercase:
		return uppercaseAlphabet
	case Digits:
		return digitAlphabet
	case Symbols:
		if s := strings.TrimSpace(customSymbols); s != "" {
			return s
		}
		return DefaultSymbols
	default:
		return ""
	}
}

// effectiveAlphabet returns the usable alphabet for a class after the
// optional ambiguous-character exclusion has been applied.
func (c CharClass) effectiveAlphabet(customSymbols string, excludeAmbiguous bool) string {
	alpha := c.baseAlphabet(customSymbols)
	if !excludeAmbiguous {
		return alpha
	}
	var b strings.Builder
	b.Grow(len(alpha))
	for _, r := range alpha {
		if !strings.ContainsRune(ambiguousChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unionAlphabet builds the deduplicated union of all enabled classes'
// effective alphabets, preserving first-seen order.
func unionAlphabet(cfg Config) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, class := range []CharClass{Lowercase, Uppercase, Digits, Symbols} {
		spec := cfg.Classes[class]
		if !spec.Enabled {
			continue
		}
		for _, r := range class.effectiveAlphabet(cfg.CustomSymbols, cfg.ExcludeAmbiguous) {
			if !seen[r] {
				seen[r] = true
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
