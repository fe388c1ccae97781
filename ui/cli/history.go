// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/InsolentFlunkey/password-generator/internal/db"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/model"
)

// newHistoryCmd builds the 'history' command group. All subcommands require
// history to be enabled in passgen.yaml.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the generation history",
		Long: `Lists, clears or exports the metadata-only generation history.
History is opt-in ('history.enabled: true' in passgen.yaml) and never stores
generated secrets, only timestamps, modes, lengths and entropy estimates.`,
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List recorded generation events",
		Args:    cobra.NoArgs,
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := db.GetHistory()
			if err != nil {
				return historyError(err)
			}
			if len(entries) == 0 {
				fmt.Println(i18n.T("history.empty"))
				return nil
			}
			for _, e := range entries {
				fmt.Println(e.String())
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:     "clear",
		Short:   "Delete all recorded generation events",
		Args:    cobra.NoArgs,
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.ClearHistory(); err != nil {
				return historyError(err)
			}
			fmt.Println(i18n.T("history.cli_cleared"))
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [output-file]",
		Short: "Export the history as compressed (zstd) JSON",
		Long: `Dumps all history entries into a Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's
not already present. Without an argument a default filename
'passgen-history-YYYY-MM-DD.json.zst' is used.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := db.GetHistory()
			if err != nil {
				return historyError(err)
			}

			outputFile := fmt.Sprintf("passgen-history-%s.json.zst", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}

			if err := writeCompressedHistory(outputFile, &model.HistoryExport{
				SchemaVersion: 1,
				Entries:       entries,
			}); err != nil {
				return err
			}
			log.Info(i18n.T("history.cli_exported", len(entries), outputFile))
			return nil
		},
	}

	cmd.AddCommand(listCmd, clearCmd, exportCmd)
	return cmd
}

// historyError rephrases the uninitialized-store error with the hint that
// history is opt-in.
func historyError(err error) error {
	if errors.Is(err, db.ErrNotInitialized) {
		return errors.New(i18n.T("history.disabled"))
	}
	return fmt.Errorf("%s", i18n.T("history.cli_error", err))
}

// writeCompressedHistory streams the JSON encoding directly to the zstd
// writer for memory efficiency.
func writeCompressedHistory(filename string, data *model.HistoryExport) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	if err := json.NewEncoder(zstdWriter).Encode(data); err != nil {
		_ = zstdWriter.Close()
		return fmt.Errorf("could not encode history: %w", err)
	}
	return zstdWriter.Close()
}

// readCompressedHistory handles reading and decoding a zstd-compressed JSON
// history export. It is the inverse of writeCompressedHistory and is used by
// tests to verify round trips.
func readCompressedHistory(filename string) (*model.HistoryExport, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdReader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var data model.HistoryExport
	if err := json.NewDecoder(zstdReader).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return &data, nil
}
