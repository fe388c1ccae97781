// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"time"

	"github.com/InsolentFlunkey/password-generator/internal/model"
)

// historyExportFixture builds a small export payload for round-trip tests.
func historyExportFixture() *model.HistoryExport {
	return &model.HistoryExport{
		SchemaVersion: 1,
		Entries: []model.HistoryEntry{
			{
				ID:          1,
				Timestamp:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
				Username:    "tester",
				Mode:        model.ModeCharacter,
				Length:      16,
				Count:       1,
				CharsetSize: 62,
				EntropyBits: 95.3,
			},
			{
				ID:          2,
				Timestamp:   time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
				Username:    "tester",
				Mode:        model.ModePassphrase,
				Length:      6,
				Count:       2,
				CharsetSize: 481,
				EntropyBits: 53.5,
			},
		},
	}
}
