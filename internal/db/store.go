// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/InsolentFlunkey/password-generator/internal/model"
)

// Store defines the interface for the generation-history backend. This allows
// for multiple database backends to be implemented.
type Store interface {
	// RecordGeneration persists a single history entry. The entry's ID and
	// Username fields are filled in by the store.
	RecordGeneration(entry model.HistoryEntry) error

	// GetHistory returns all history entries, newest first.
	GetHistory() ([]model.HistoryEntry, error)

	// ClearHistory removes all history entries.
	ClearHistory() error

	// Close releases the underlying database connection.
	Close() error
}

// RecordGeneration records an entry via the package-level store, silently
// doing nothing when history is disabled.
func RecordGeneration(entry model.HistoryEntry) error {
	if store == nil {
		return nil
	}
	return store.RecordGeneration(entry)
}

// GetHistory lists entries via the package-level store.
func GetHistory() ([]model.HistoryEntry, error) {
	if store == nil {
		return nil, ErrNotInitialized
	}
	return store.GetHistory()
}

// ClearHistory wipes the history via the package-level store.
func ClearHistory() error {
	if store == nil {
		return ErrNotInitialized
	}
	return store.ClearHistory()
}
