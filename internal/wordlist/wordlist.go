// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package wordlist loads and filters the vocabularies used for passphrase
// generation. Wordlists are plain text files with one word per line;
// zstd-compressed lists (.zst) are supported transparently for the large
// diceware-style vocabularies.
package wordlist // import "github.com/InsolentFlunkey/password-generator/internal/wordlist"

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//go:embed words.txt
var embeddedFS embed.FS

// MinRecommended is the vocabulary size below which a wordlist is considered
// too small for real security. Loading smaller lists still succeeds; the UI
// warns instead.
const MinRecommended = 256

// Fallback returns the small built-in wordlist used when no external list is
// configured. It is large enough for demos, not for serious passphrases.
func Fallback() []string {
	data, err := embeddedFS.ReadFile("words.txt")
	if err != nil {
		// The file is embedded at compile time; this cannot fail at runtime.
		panic(fmt.Sprintf("embedded wordlist missing: %v", err))
	}
	return Filter(strings.Split(string(data), "\n"))
}

// Filter keeps the usable words from raw input lines: each line is trimmed
// and retained only when non-empty and consisting solely of letters,
// apostrophes and hyphens. Words are lowercased. Order is preserved and
// duplicates are NOT removed; callers estimating entropy from the vocabulary
// size should be aware that duplicates inflate it.
func Filter(lines []string) []string {
	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" || !isWord(w) {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

// isWord reports whether every character is a letter, apostrophe or hyphen.
func isWord(w string) bool {
	for _, r := range w {
		lower := r | 0x20 // ASCII lowercase fold
		if (lower < 'a' || lower > 'z') && r != '\'' && r != '-' {
			return false
		}
	}
	return true
}

// Load reads and filters a wordlist from a file. Files ending in .zst are
// decompressed on the fly.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return Read(r)
}

// Read filters a wordlist from an open reader, one word per line.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	return Filter(lines), nil
}

// Inspect loads a wordlist like Load and additionally reports how many
// non-blank input lines were rejected by filtering. The wordlist subcommand
// uses it to validate candidate lists.
func Inspect(path string) (words []string, rejected int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open wordlist: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".zst") {
		zr, zerr := zstd.NewReader(f)
		if zerr != nil {
			return nil, 0, fmt.Errorf("could not create zstd reader: %w", zerr)
		}
		defer zr.Close()
		r = zr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	nonBlank := 0
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			nonBlank++
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading wordlist: %w", err)
	}
	words = Filter(lines)
	return words, nonBlank - len(words), nil
}
