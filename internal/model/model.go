// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package model holds the shared data types passed between the generation
// core, the history store, and the UI layers.
package model

import (
	"fmt"
	"time"
)

// Generation modes recorded in history entries.
const (
	ModeCharacter  = "character"
	ModePassphrase = "passphrase"
)

// HistoryEntry describes one generation event. Only metadata is recorded;
// generated secrets are never persisted.
type HistoryEntry struct {
	ID          int       `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Username    string    `json:"username"`
	Mode        string    `json:"mode"`         // ModeCharacter or ModePassphrase
	Length      int       `json:"length"`       // characters (character mode) or words (passphrase mode)
	Count       int       `json:"count"`        // outputs produced in the batch
	CharsetSize int       `json:"charset_size"` // union alphabet or vocabulary size
	EntropyBits float64   `json:"entropy_bits"` // estimate at generation time
}

// String returns a compact single-line summary, used by CLI output.
func (e HistoryEntry) String() string {
	return fmt.Sprintf("%s %s len=%d count=%d charset=%d entropy=%.1f",
		e.Timestamp.Format("2006-01-02 15:04:05"), e.Mode, e.Length, e.Count, e.CharsetSize, e.EntropyBits)
}

// HistoryExport is the JSON shape written by `passgen history export`.
type HistoryExport struct {
	SchemaVersion int            `json:"schema_version"`
	Entries       []HistoryEntry `json:"entries"`
}
