// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/db"
	"github.com/InsolentFlunkey/password-generator/internal/export"
	"github.com/InsolentFlunkey/password-generator/internal/generator"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/model"
)

// generatorConfigFromSettings maps persisted generator settings onto a
// request config. Flag overrides are applied on top by the command.
func generatorConfigFromSettings(gc config.GeneratorConfig) generator.Config {
	cfg := generator.DefaultConfig()
	cfg.Length = gc.Length
	cfg.Count = gc.Count
	cfg.CustomSymbols = gc.CustomSymbols
	cfg.ExcludeAmbiguous = gc.ExcludeAmbiguous
	cfg.Classes[generator.Lowercase] = generator.ClassSpec{Enabled: gc.Lowercase, Minimum: gc.MinLowercase}
	cfg.Classes[generator.Uppercase] = generator.ClassSpec{Enabled: gc.Uppercase, Minimum: gc.MinUppercase}
	cfg.Classes[generator.Digits] = generator.ClassSpec{Enabled: gc.Digits, Minimum: gc.MinDigits}
	cfg.Classes[generator.Symbols] = generator.ClassSpec{Enabled: gc.Symbols, Minimum: gc.MinSymbols}
	return cfg
}

// applyGenerateFlags overlays explicitly-set flags onto the config so that
// saved preferences remain in effect for everything the user didn't mention.
func applyGenerateFlags(cmd *cobra.Command, cfg generator.Config) (generator.Config, error) {
	if preset, _ := cmd.Flags().GetString("preset"); cmd.Flags().Changed("preset") {
		var err error
		cfg, err = generator.PresetConfig(preset, cfg)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("length") {
		cfg.Length, _ = cmd.Flags().GetInt("length")
	}
	if cmd.Flags().Changed("count") {
		cfg.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("custom-symbols") {
		cfg.CustomSymbols, _ = cmd.Flags().GetString("custom-symbols")
	}
	if cmd.Flags().Changed("exclude-ambiguous") {
		cfg.ExcludeAmbiguous, _ = cmd.Flags().GetBool("exclude-ambiguous")
	}

	classFlags := []struct {
		enable, min string
		class       generator.CharClass
	}{
		{"lowercase", "min-lowercase", generator.Lowercase},
		{"uppercase", "min-uppercase", generator.Uppercase},
		{"digits", "min-digits", generator.Digits},
		{"symbols", "min-symbols", generator.Symbols},
	}
	for _, cf := range classFlags {
		if cmd.Flags().Changed(cf.enable) {
			cfg.Classes[cf.class].Enabled, _ = cmd.Flags().GetBool(cf.enable)
		}
		if cmd.Flags().Changed(cf.min) {
			cfg.Classes[cf.class].Minimum, _ = cmd.Flags().GetInt(cf.min)
			// Asking for a minimum implies the class is wanted.
			if cfg.Classes[cf.class].Minimum > 0 && !cmd.Flags().Changed(cf.enable) {
				cfg.Classes[cf.class].Enabled = true
			}
		}
	}

	return cfg, nil
}

// newGenerateCmd builds the 'generate' command for character-mode passwords.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random character passwords",
		Long: `Generates one or more random passwords from the enabled character
classes, honoring per-class minimum counts. Settings not given as flags come
from the saved preferences in passgen.yaml.

Examples:
  # One password with the saved settings
  passgen generate

  # Five 24-character passwords without ambiguous characters
  passgen generate -n 5 -l 24 --exclude-ambiguous

  # A digits-only PIN
  passgen generate --preset pin`,
		Args:    cobra.NoArgs,
		PreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := applyGenerateFlags(cmd, generatorConfigFromSettings(appConfig.Generator))
			if err != nil {
				return err
			}

			results, err := generator.Many(cfg.Count, func() (string, error) {
				return generator.Password(cfg)
			})
			if err != nil {
				return err
			}

			hashOut, _ := cmd.Flags().GetBool("hash")
			for _, p := range results {
				if hashOut {
					h, herr := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
					if herr != nil {
						return herr
					}
					fmt.Printf("%s %s\n", p, h)
				} else {
					fmt.Println(p)
				}
			}

			size, bits := generator.CharacterEntropy(cfg)
			if showEntropy, _ := cmd.Flags().GetBool("entropy"); showEntropy {
				fmt.Println(i18n.T("generate.cli_entropy", size, bits))
			} else {
				log.Info(i18n.T("generate.cli_entropy", size, bits))
			}

			if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
				format := export.FormatForPath(outFile)
				if f, _ := cmd.Flags().GetString("format"); f != "" {
					format, err = export.ParseFormat(f)
					if err != nil {
						return err
					}
				}
				if err := export.WriteFile(outFile, results, format); err != nil {
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

			recordCLIGeneration(model.ModeCharacter, cfg.Length, cfg.Count, size, bits)
			return nil
		},
	}

	cmd.Flags().IntP("length", "l", 16, "Password length")
	cmd.Flags().IntP("count", "n", 1, "Number of passwords to generate")
	cmd.Flags().Bool("lowercase", true, "Include lowercase letters")
	cmd.Flags().Bool("uppercase", true, "Include uppercase letters")
	cmd.Flags().Bool("digits", true, "Include digits")
	cmd.Flags().Bool("symbols", true, "Include symbols")
	cmd.Flags().Int("min-lowercase", 1, "Minimum lowercase letters")
	cmd.Flags().Int("min-uppercase", 1, "Minimum uppercase letters")
	cmd.Flags().Int("min-digits", 1, "Minimum digits")
	cmd.Flags().Int("min-symbols", 1, "Minimum symbols")
	cmd.Flags().String("custom-symbols", "", "Override the symbol alphabet")
	cmd.Flags().Bool("exclude-ambiguous", false, "Exclude visually ambiguous characters")
	cmd.Flags().String("preset", "", "Apply a preset ("+strings.Join(generator.PresetNames, ", ")+")")
	cmd.Flags().StringP("output", "o", "", "Write results to a file (.txt or .csv)")
	cmd.Flags().String("format", "", "Output file format (txt, csv); inferred from the extension when empty")
	cmd.Flags().BoolP("copy", "c", false, "Copy the first result to the clipboard")
	cmd.Flags().Bool("hash", false, "Print a bcrypt hash next to each password")
	cmd.Flags().Bool("entropy", false, "Print the entropy estimate after the passwords")

	return cmd
}

// recordCLIGeneration stores a metadata-only history entry. History failures
// are logged and never fail the command.
func recordCLIGeneration(mode string, length, count, charsetSize int, entropyBits float64) {
	if !db.IsInitialized() {
		return
	}
	err := db.RecordGeneration(model.HistoryEntry{
		Mode:        mode,
		Length:      length,
		Count:       count,
		CharsetSize: charsetSize,
		EntropyBits: entropyBits,
	})
	if err != nil {
		log.Warnf("failed to record generation history: %v", err)
	}
}
