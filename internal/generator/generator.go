// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"strings"
	"unicode"
)

// ClassSpec describes how one character class participates in a generation
// request: whether it contributes characters at all, and how many characters
// the output must contain from it at minimum.
type ClassSpec struct {
	Enabled bool
	Minimum int
}

// Config is the immutable snapshot of a character-mode generation request.
// The zero value is not valid; use DefaultConfig or a preset as a base.
type Config struct {
	Classes          [classCount]ClassSpec
	Length           int
	CustomSymbols    string // blank uses DefaultSymbols
	ExcludeAmbiguous bool
	Count            int // number of outputs for Many; single calls ignore it
}

// PassphraseConfig is the snapshot of a wordlist-mode generation request.
type PassphraseConfig struct {
	Words      []string
	WordCount  int
	Separator  string
	Capitalize bool
	Count      int
}

// DefaultConfig returns the configuration the UI starts from: all classes
// enabled with a minimum of one, length 16.
func DefaultConfig() Config {
	var cfg Config
	for i := range cfg.Classes {
		cfg.Classes[i] = ClassSpec{Enabled: true, Minimum: 1}
	}
	cfg.Length = 16
	cfg.Count = 1
	return cfg
}

// validate checks a character-mode config and returns the union alphabet.
// All failures here are deterministic and occur before any random draw.
func validate(cfg Config) (string, error) {
	union := unionAlphabet(cfg)
	if union == "" {
		return "", ErrInsufficientAlphabet
	}

	required := 0
	for class, spec := range cfg.Classes {
		if !spec.Enabled {
			continue
		}
		if spec.Minimum < 0 {
			continue // treat negative minimums as zero, like the UI does
		}
		required += spec.Minimum
		if spec.Minimum > 0 && CharClass(class).effectiveAlphabet(cfg.CustomSymbols, cfg.ExcludeAmbiguous) == "" {
			return "", ErrInsufficientAlphabet
		}
	}
	if required > cfg.Length {
		return "", &ConstraintError{Required: required, Length: cfg.Length}
	}
	return union, nil
}

// Password generates one password honoring the per-class minimum counts.
//
// The minimums are guaranteed by drawing each class's mandatory characters
// from that class's own alphabet, then filling the remainder from the union
// of all enabled alphabets. The combined sequence is shuffled with an
// unbiased Fisher-Yates pass so the mandatory characters are not clustered
// at the front.
func Password(cfg Config) (string, error) {
	if cfg.Length < 0 {
		cfg.Length = 0
	}
	union, err := validate(cfg)
	if err != nil {
		return "", err
	}

	out := make([]rune, 0, cfg.Length)

	// Mandatory characters, drawn from each class's own pool.
	for class, spec := range cfg.Classes {
		if !spec.Enabled || spec.Minimum <= 0 {
			continue
		}
		pool := []rune(CharClass(class).effectiveAlphabet(cfg.CustomSymbols, cfg.ExcludeAmbiguous))
		for i := 0; i < spec.Minimum; i++ {
			r, err := pickRune(pool)
			if err != nil {
				return "", err
			}
			out = append(out, r)
		}
	}

	// Filler characters from the full union alphabet.
	unionPool := []rune(union)
	for len(out) < cfg.Length {
		r, err := pickRune(unionPool)
		if err != nil {
			return "", err
		}
		out = append(out, r)
	}

	if err := shuffleRunes(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// Passphrase generates one passphrase by drawing WordCount words uniformly
// and independently (with replacement) from the vocabulary.
func Passphrase(cfg PassphraseConfig) (string, error) {
	if len(cfg.Words) == 0 {
		return "", ErrEmptyVocabulary
	}
	if cfg.WordCount < 1 {
		cfg.WordCount = 1
	}

	picks := make([]string, cfg.WordCount)
	for i := range picks {
		j, err := randInt(len(cfg.Words))
		if err != nil {
			return "", err
		}
		w := cfg.Words[j]
		if cfg.Capitalize {
			w = capitalize(w)
		}
		picks[i] = w
	}
	return strings.Join(picks, cfg.Separator), nil
}

// Many invokes fn count times and collects the results in generation order.
// Each invocation is independent; a failure aborts the batch.
func Many(count int, fn func() (string, error)) ([]string, error) {
	if count < 1 {
		count = 1
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// capitalize upper-cases the first letter of a word, leaving the rest alone.
func capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
