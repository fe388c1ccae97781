// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/atotto/clipboard"

	"github.com/InsolentFlunkey/password-generator/internal/db"
	"github.com/InsolentFlunkey/password-generator/internal/export"
	"github.com/InsolentFlunkey/password-generator/internal/logging"
	"github.com/InsolentFlunkey/password-generator/internal/model"
)

// saveResults writes generated secrets to a file, inferring the format from
// the file extension (.csv gets a header row, everything else is plain text).
func saveResults(path string, results []string) error {
	return export.WriteFile(path, results, export.FormatForPath(path))
}

// copyToClipboard places text on the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// recordCharacterGeneration stores a metadata-only history entry for a
// character-mode run. Errors are logged, never surfaced: history must not
// get in the way of generation.
func recordCharacterGeneration(length, count, charsetSize int, entropyBits float64) {
	if !db.IsInitialized() {
		return
	}
	err := db.RecordGeneration(model.HistoryEntry{
		Mode:        model.ModeCharacter,
		Length:      length,
		Count:       count,
		CharsetSize: charsetSize,
		EntropyBits: entropyBits,
	})
	if err != nil {
		logging.Warnf("failed to record generation history: %v", err)
	}
}

// recordPassphraseGeneration stores a metadata-only history entry for a
// passphrase run. Length holds the word count, CharsetSize the vocabulary size.
func recordPassphraseGeneration(words, count, vocabSize int, entropyBits float64) {
	if !db.IsInitialized() {
		return
	}
	err := db.RecordGeneration(model.HistoryEntry{
		Mode:        model.ModePassphrase,
		Length:      words,
		Count:       count,
		CharsetSize: vocabSize,
		EntropyBits: entropyBits,
	})
	if err != nil {
		logging.Warnf("failed to record generation history: %v", err)
	}
}
