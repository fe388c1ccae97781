// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"math"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/wordlist"
)

// newWordlistCmd builds the 'wordlist' command for inspecting candidate lists.
func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist <file>",
		Short: "Inspect and validate a wordlist",
		Long: `Loads a wordlist the same way passphrase generation does and reports
how many usable words it contains and the entropy a passphrase drawn from it
would have. Files ending in .zst are decompressed on the fly.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, rejected, err := wordlist.Inspect(args[0])
			if err != nil {
				return err
			}

			fmt.Println(i18n.T("wordlist.cli_summary", len(words), rejected))

			phraseWords, _ := cmd.Flags().GetInt("words")
			if len(words) > 1 {
				perWord := math.Log2(float64(len(words)))
				fmt.Println(i18n.T("wordlist.cli_bits", perWord, perWord*float64(phraseWords), phraseWords))
			}
			if len(words) < wordlist.MinRecommended {
				log.Warn(i18n.T("wordlist.cli_too_small", wordlist.MinRecommended))
			}
			return nil
		},
	}

	cmd.Flags().IntP("words", "w", 6, "Passphrase word count used for the entropy estimate")

	return cmd
}
