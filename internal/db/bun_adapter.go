// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"os/user"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/InsolentFlunkey/password-generator/internal/model"
)

// HistoryModel maps the generation_history table for Bun queries.
type HistoryModel struct {
	bun.BaseModel `bun:"table:generation_history"`
	ID            int       `bun:"id,pk,autoincrement"`
	Timestamp     time.Time `bun:"timestamp"`
	Username      string    `bun:"username"`
	Mode          string    `bun:"mode"`
	Length        int       `bun:"length"`
	Count         int       `bun:"count"`
	CharsetSize   int       `bun:"charset_size"`
	EntropyBits   float64   `bun:"entropy_bits"`
}

func historyModelToModel(h HistoryModel) model.HistoryEntry {
	return model.HistoryEntry{
		ID:          h.ID,
		Timestamp:   h.Timestamp,
		Username:    h.Username,
		Mode:        h.Mode,
		Length:      h.Length,
		Count:       h.Count,
		CharsetSize: h.CharsetSize,
		EntropyBits: h.EntropyBits,
	}
}

// historyStore implements Store on top of a *bun.DB, regardless of dialect.
type historyStore struct {
	bun *bun.DB
}

// RecordGeneration inserts a history entry stamped with the current OS user.
func (s *historyStore) RecordGeneration(entry model.HistoryEntry) error {
	ctx := context.Background()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Username == "" {
		entry.Username = currentUsername()
	}
	_, err := s.bun.NewInsert().Model(&HistoryModel{
		Timestamp:   entry.Timestamp,
		Username:    entry.Username,
		Mode:        entry.Mode,
		Length:      entry.Length,
		Count:       entry.Count,
		CharsetSize: entry.CharsetSize,
		EntropyBits: entry.EntropyBits,
	}).Exec(ctx)
	return MapDBError(err)
}

// GetHistory returns all entries, newest first.
func (s *historyStore) GetHistory() ([]model.HistoryEntry, error) {
	ctx := context.Background()
	var hm []HistoryModel
	if err := s.bun.NewSelect().Model(&hm).OrderExpr("timestamp DESC, id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.HistoryEntry, 0, len(hm))
	for _, h := range hm {
		out = append(out, historyModelToModel(h))
	}
	return out, nil
}

// ClearHistory removes every entry. A raw DELETE is used because Bun requires
// a WHERE clause for Delete queries to prevent accidental full-table deletes.
func (s *historyStore) ClearHistory() error {
	ctx := context.Background()
	_, err := ExecRaw(ctx, s.bun, "DELETE FROM generation_history")
	return err
}

// Close releases the underlying connection pool.
func (s *historyStore) Close() error {
	return s.bun.Close()
}

// currentUsername resolves the OS user, stripping a Windows domain prefix.
func currentUsername() string {
	curUser, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if parts := strings.Split(curUser.Username, `\`); len(parts) > 1 {
		return parts[1]
	}
	return curUser.Username
}
