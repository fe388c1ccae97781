// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/InsolentFlunkey/password-generator/internal/export"
	"github.com/InsolentFlunkey/password-generator/internal/generator"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/model"
	"github.com/InsolentFlunkey/password-generator/internal/wordlist"
)

// loadVocabulary resolves the wordlist to use: an explicit path, then the
// configured one, then the built-in fallback.
func loadVocabulary(path string) ([]string, error) {
	if path == "" {
		path = appConfig.Wordlist
	}
	if path == "" {
		return wordlist.Fallback(), nil
	}
	return wordlist.Load(path)
}

// newPassphraseCmd builds the 'passphrase' command for wordlist passphrases.
func newPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate wordlist passphrases",
		Long: `Generates one or more passphrases by sampling words from a wordlist.
Without --wordlist, the list configured in passgen.yaml is used, falling back
to a small built-in vocabulary.

Examples:
  # A six-word passphrase with the saved settings
  passgen passphrase

  # Four words from a diceware list, dot-separated and capitalized
  passgen passphrase -w 4 -s . --capitalize --wordlist eff_large.txt.zst`,
		Args:    cobra.NoArgs,
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			listPath, _ := cmd.Flags().GetString("wordlist")
			words, err := loadVocabulary(listPath)
			if err != nil {
				return err
			}
			if len(words) < wordlist.MinRecommended {
				log.Warn(i18n.T("wordlist.cli_too_small", wordlist.MinRecommended))
			}

			cfg := generator.PassphraseConfig{
				Words:      words,
				WordCount:  appConfig.Phrase.Words,
				Separator:  appConfig.Phrase.Separator,
				Capitalize: appConfig.Phrase.Capitalize,
				Count:      1,
			}
			if cmd.Flags().Changed("words") {
				cfg.WordCount, _ = cmd.Flags().GetInt("words")
			}
			if cmd.Flags().Changed("separator") {
				cfg.Separator, _ = cmd.Flags().GetString("separator")
			}
			if cmd.Flags().Changed("capitalize") {
				cfg.Capitalize, _ = cmd.Flags().GetBool("capitalize")
			}
			if cmd.Flags().Changed("count") {
				cfg.Count, _ = cmd.Flags().GetInt("count")
			}

			results, err := generator.Many(cfg.Count, func() (string, error) {
				return generator.Passphrase(cfg)
			})
			if err != nil {
				return err
			}
			for _, p := range results {
				fmt.Println(p)
			}

			vocab, bits := generator.PassphraseEntropy(cfg)
			log.Info(i18n.T("passphrase.cli_entropy", vocab, bits))

			if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
				if err := export.WriteFile(outFile, results, export.FormatForPath(outFile)); err != nil {
					return err
				}
				log.Info(i18n.T("generate.cli_saved", len(results), outFile))
			}

			if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
				if err := clipboard.WriteAll(results[0]); err != nil {
					return err
				}
				log.Info(i18n.T("generate.cli_copied"))
			}

			recordCLIGeneration(model.ModePassphrase, cfg.WordCount, cfg.Count, vocab, bits)
			return nil
		},
	}

	cmd.Flags().IntP("words", "w", 6, "Number of words per passphrase")
	cmd.Flags().IntP("count", "n", 1, "Number of passphrases to generate")
	cmd.Flags().StringP("separator", "s", "-", "Word separator")
	cmd.Flags().Bool("capitalize", false, "Capitalize the first letter of each word")
	cmd.Flags().String("wordlist", "", "Wordlist file (.txt or .zst), one word per line")
	cmd.Flags().StringP("output", "o", "", "Write results to a file (.txt or .csv)")
	cmd.Flags().BoolP("copy", "c", false, "Copy the first result to the clipboard")

	return cmd
}
