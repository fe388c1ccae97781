// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import "math"

// CharsetSize returns the size of the union alphabet actually usable for a
// character-mode config, after exclusions and symbol overrides.
func CharsetSize(cfg Config) int {
	return len([]rune(unionAlphabet(cfg)))
}

// CharacterEntropy estimates the strength of a character-mode config as
// Length * log2(charsetSize).
//
// This is a deliberate upper bound: it ignores the entropy reduction caused
// by the per-class minimum-count constraints. Users compare the number across
// configurations, so the formula must stay stable rather than exact.
//
// A charset of size <= 1 yields 0 bits; callers should flag that as a
// degenerate configuration.
func CharacterEntropy(cfg Config) (charsetSize int, bits float64) {
	charsetSize = CharsetSize(cfg)
	if cfg.Length <= 0 || charsetSize <= 1 {
		return charsetSize, 0
	}
	return charsetSize, float64(cfg.Length) * math.Log2(float64(charsetSize))
}

// PassphraseEntropy estimates the strength of a passphrase config as
// WordCount * log2(vocabSize). The vocabulary is counted as loaded; duplicate
// words inflate the apparent size without adding real entropy (the loader
// does not deduplicate).
func PassphraseEntropy(cfg PassphraseConfig) (vocabSize int, bits float64) {
	vocabSize = len(cfg.Words)
	if cfg.WordCount <= 0 || vocabSize <= 1 {
		return vocabSize, 0
	}
	return vocabSize, float64(cfg.WordCount) * math.Log2(float64(vocabSize))
}
