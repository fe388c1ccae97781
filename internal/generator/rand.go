// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// This file wraps crypto/rand with uniform helpers. Every character draw and
// every shuffle swap goes through randInt, which uses rejection sampling so
// the distribution is exactly uniform regardless of the alphabet size.
package generator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// randInt returns a uniform random int in [0, n) from the OS CSPRNG.
// It rejects values from the biased tail of the 64-bit range instead of
// reducing modulo n, so no index is more likely than another.
func randInt(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("randInt: bound must be positive, got %d", n)
	}
	bound := uint64(n)
	// Largest multiple of bound that fits in a uint64; anything at or above
	// it would wrap unevenly under the modulo.
	limit := (^uint64(0) / bound) * bound
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("reading random bytes: %w", err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % bound), nil
		}
	}
}

// pickRune draws one character uniformly from alphabet.
func pickRune(alphabet []rune) (rune, error) {
	i, err := randInt(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffleRunes applies an in-place Fisher-Yates shuffle with each swap index
// drawn from the secure source, making every permutation of the multiset
// equally likely.
func shuffleRunes(runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}
