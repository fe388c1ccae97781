// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"errors"
	"strings"
	"testing"
)

// configWith builds a config with only the given classes enabled.
func configWith(length int, minimums map[CharClass]int) Config {
	var cfg Config
	cfg.Length = length
	cfg.Count = 1
	for class, min := range minimums {
		cfg.Classes[class] = ClassSpec{Enabled: true, Minimum: min}
	}
	return cfg
}

func countFrom(s, alphabet string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(alphabet, r) {
			n++
		}
	}
	return n
}

func TestPassword_LengthAndClassMinimums(t *testing.T) {
	cfg := configWith(8, map[CharClass]int{Lowercase: 1, Digits: 1})

	// Statistical check: the minimums must hold on every trial, not just most.
	for i := 0; i < 500; i++ {
		pw, err := Password(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pw) != 8 {
			t.Fatalf("expected length 8, got %d (%q)", len(pw), pw)
		}
		if countFrom(pw, lowercaseAlphabet) < 1 {
			t.Fatalf("missing lowercase in %q", pw)
		}
		if countFrom(pw, digitAlphabet) < 1 {
			t.Fatalf("missing digit in %q", pw)
		}
		// Everything must come from the union of the two enabled classes.
		for _, r := range pw {
			if !strings.ContainsRune(lowercaseAlphabet+digitAlphabet, r) {
				t.Fatalf("character %q outside union alphabet in %q", r, pw)
			}
		}
	}
}

func TestPassword_HigherMinimumsHonored(t *testing.T) {
	cfg := configWith(12, map[CharClass]int{Uppercase: 3, Symbols: 4})
	symbolSet := DefaultSymbols

	for i := 0; i < 200; i++ {
		pw, err := Password(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := countFrom(pw, uppercaseAlphabet); got < 3 {
			t.Fatalf("expected >=3 uppercase, got %d in %q", got, pw)
		}
		if got := countFrom(pw, symbolSet); got < 4 {
			t.Fatalf("expected >=4 symbols, got %d in %q", got, pw)
		}
	}
}

func TestPassword_ConstraintViolation(t *testing.T) {
	cfg := configWith(4, map[CharClass]int{Lowercase: 3, Digits: 2})
	_, err := Password(cfg)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConstraintError, got %T", err)
	}
	if ce.Required != 5 || ce.Length != 4 {
		t.Fatalf("unexpected constraint detail: required=%d length=%d", ce.Required, ce.Length)
	}
}

func TestPassword_NoClassesEnabled(t *testing.T) {
	var cfg Config
	cfg.Length = 10
	_, err := Password(cfg)
	if !errors.Is(err, ErrInsufficientAlphabet) {
		t.Fatalf("expected ErrInsufficientAlphabet, got %v", err)
	}
}

func TestPassword_EmptyClassAlphabetWithMinimum(t *testing.T) {
	// A custom symbol set consisting solely of ambiguous characters is wiped
	// out by the exclusion, so a symbol minimum can no longer be satisfied.
	var cfg Config
	cfg.Length = 10
	cfg.Classes[Lowercase] = ClassSpec{Enabled: true}
	cfg.Classes[Symbols] = ClassSpec{Enabled: true, Minimum: 1}
	cfg.CustomSymbols = "Il1O0"
	cfg.ExcludeAmbiguous = true

	_, err := Password(cfg)
	if !errors.Is(err, ErrInsufficientAlphabet) {
		t.Fatalf("expected ErrInsufficientAlphabet, got %v", err)
	}
}

func TestPassword_ExcludeAmbiguous(t *testing.T) {
	cfg := configWith(64, map[CharClass]int{Uppercase: 1, Digits: 1})
	cfg.ExcludeAmbiguous = true

	for i := 0; i < 50; i++ {
		pw, err := Password(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.ContainsAny(pw, ambiguousChars) {
			t.Fatalf("ambiguous character leaked into %q", pw)
		}
	}
}

func TestPassword_CustomSymbolsOverride(t *testing.T) {
	var cfg Config
	cfg.Length = 20
	cfg.Classes[Symbols] = ClassSpec{Enabled: true, Minimum: 1}
	cfg.CustomSymbols = "@#"

	for i := 0; i < 50; i++ {
		pw, err := Password(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, r := range pw {
			if r != '@' && r != '#' {
				t.Fatalf("character %q outside custom symbol set in %q", r, pw)
			}
		}
	}
}

func TestPassphrase_FormatAndContents(t *testing.T) {
	cfg := PassphraseConfig{
		Words:      []string{"apple", "banana", "cherry"},
		WordCount:  3,
		Separator:  "-",
		Capitalize: true,
	}
	allowed := map[string]bool{"Apple": true, "Banana": true, "Cherry": true}

	for i := 0; i < 100; i++ {
		phrase, err := Passphrase(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parts := strings.Split(phrase, "-")
		if len(parts) != 3 {
			t.Fatalf("expected 3 words, got %d (%q)", len(parts), phrase)
		}
		for _, p := range parts {
			if !allowed[p] {
				t.Fatalf("unexpected word %q in %q", p, phrase)
			}
		}
	}
}

func TestPassphrase_EmptyVocabulary(t *testing.T) {
	_, err := Passphrase(PassphraseConfig{WordCount: 4, Separator: "-"})
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestPassphrase_EmptySeparator(t *testing.T) {
	cfg := PassphraseConfig{Words: []string{"aa"}, WordCount: 3}
	phrase, err := Passphrase(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phrase != "aaaaaa" {
		t.Fatalf("expected concatenated words, got %q", phrase)
	}
}

func TestMany_CountAndIndependence(t *testing.T) {
	cfg := configWith(12, map[CharClass]int{Lowercase: 1, Uppercase: 1, Digits: 1})
	out, err := Many(5, func() (string, error) { return Password(cfg) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 results, got %d", len(out))
	}
	// With 12 characters over a 62-char alphabet, collisions across five
	// draws indicate a broken random source.
	seen := map[string]bool{}
	for _, pw := range out {
		if seen[pw] {
			t.Fatalf("duplicate output %q across independent draws", pw)
		}
		seen[pw] = true
	}
}

func TestMany_PropagatesError(t *testing.T) {
	cfg := configWith(2, map[CharClass]int{Digits: 5})
	_, err := Many(3, func() (string, error) { return Password(cfg) })
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestPresetConfig(t *testing.T) {
	base := DefaultConfig()

	pin, err := PresetConfig(PresetPIN, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pin.Length != 8 || !pin.Classes[Digits].Enabled || pin.Classes[Lowercase].Enabled {
		t.Fatalf("unexpected PIN preset: %+v", pin)
	}
	if pin.Classes[Digits].Minimum != 4 {
		t.Fatalf("expected PIN digit minimum 4, got %d", pin.Classes[Digits].Minimum)
	}

	if _, err := PresetConfig("bogus", base); err == nil {
		t.Fatalf("expected error for unknown preset")
	}

	// Custom leaves the config untouched.
	same, err := PresetConfig(PresetCustom, base)
	if err != nil || same != base {
		t.Fatalf("custom preset should be a no-op, got %+v err=%v", same, err)
	}
}
