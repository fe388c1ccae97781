// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for the deterministic validation failures. All of them are
// detected before any randomness is consumed, and none is retryable.
var (
	// ErrConstraintViolation is returned when the per-class minimum counts
	// cannot fit in the requested length. Use errors.Is against it; the
	// concrete value is a *ConstraintError carrying the actual numbers.
	ErrConstraintViolation = errors.New("per-class minimums exceed password length")

	// ErrInsufficientAlphabet is returned when an enabled class's alphabet is
	// empty after exclusions while its minimum is > 0, or when the union
	// alphabet is empty.
	ErrInsufficientAlphabet = errors.New("character set is empty")

	// ErrEmptyVocabulary is returned when passphrase generation is requested
	// with no loaded words.
	ErrEmptyVocabulary = errors.New("wordlist is empty")
)

// ConstraintError reports how far the per-class minimums overshoot the
// requested length so the caller can adjust the configuration and retry.
type ConstraintError struct {
	Required int // sum of minimums over enabled classes
	Length   int // requested password length
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("required characters (%d) exceed length %d", e.Required, e.Length)
}

// Unwrap makes errors.Is(err, ErrConstraintViolation) work.
func (e *ConstraintError) Unwrap() error { return ErrConstraintViolation }
