// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package config persists user preferences between sessions: the last-used
// generation settings, the configured wordlist path, the UI language, and the
// optional history database. Settings are loaded at startup and written back
// on explicit save, with viper layering file, environment (PASSGEN_*), and
// CLI flag values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the persisted application state. Field names map one-to-one to
// passgen.yaml keys.
type Config struct {
	Language  string          `mapstructure:"language" yaml:"language"`
	Wordlist  string          `mapstructure:"wordlist" yaml:"wordlist"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Phrase    PhraseConfig    `mapstructure:"phrase" yaml:"phrase"`
	History   HistoryConfig   `mapstructure:"history" yaml:"history"`
}

// GeneratorConfig holds the character-mode settings the user last used.
type GeneratorConfig struct {
	Length           int    `mapstructure:"length" yaml:"length"`
	Count            int    `mapstructure:"count" yaml:"count"`
	Lowercase        bool   `mapstructure:"lowercase" yaml:"lowercase"`
	Uppercase        bool   `mapstructure:"uppercase" yaml:"uppercase"`
	Digits           bool   `mapstructure:"digits" yaml:"digits"`
	Symbols          bool   `mapstructure:"symbols" yaml:"symbols"`
	MinLowercase     int    `mapstructure:"min_lowercase" yaml:"min_lowercase"`
	MinUppercase     int    `mapstructure:"min_uppercase" yaml:"min_uppercase"`
	MinDigits        int    `mapstructure:"min_digits" yaml:"min_digits"`
	MinSymbols       int    `mapstructure:"min_symbols" yaml:"min_symbols"`
	CustomSymbols    string `mapstructure:"custom_symbols" yaml:"custom_symbols"`
	ExcludeAmbiguous bool   `mapstructure:"exclude_ambiguous" yaml:"exclude_ambiguous"`
}

// PhraseConfig holds the passphrase-mode settings the user last used.
type PhraseConfig struct {
	Words      int    `mapstructure:"words" yaml:"words"`
	Separator  string `mapstructure:"separator" yaml:"separator"`
	Capitalize bool   `mapstructure:"capitalize" yaml:"capitalize"`
}

// HistoryConfig controls the optional generation-history store.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Type    string `mapstructure:"type" yaml:"type"` // sqlite, postgres, mysql
	DSN     string `mapstructure:"dsn" yaml:"dsn"`
}

// Defaults returns the settings map used to seed viper before any file,
// environment, or flag values are applied.
func Defaults() map[string]any {
	return map[string]any{
		"language":                    "en",
		"wordlist":                    "",
		"generator.length":            16,
		"generator.count":             1,
		"generator.lowercase":         true,
		"generator.uppercase":         true,
		"generator.digits":            true,
		"generator.symbols":           true,
		"generator.min_lowercase":     1,
		"generator.min_uppercase":     1,
		"generator.min_digits":        1,
		"generator.min_symbols":       1,
		"generator.custom_symbols":    "",
		"generator.exclude_ambiguous": false,
		"phrase.words":                6,
		"phrase.separator":            "-",
		"phrase.capitalize":           false,
		"history.enabled":             false,
		"history.type":                "sqlite",
		"history.dsn":                 defaultHistoryDSN(),
	}
}

// defaultHistoryDSN places the sqlite history database next to the config file.
func defaultHistoryDSN() string {
	if path, err := getConfigPath(false); err == nil {
		return filepath.Join(filepath.Dir(path), "history.db")
	}
	return "./passgen-history.db"
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passgen")
		default: // Linux, macOS, etc.
			configDir = "/etc/passgen"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passgen")
	}

	return filepath.Join(configDir, "passgen.yaml"), nil
}

// UserConfigPath returns the per-user passgen.yaml location. The CLI uses it
// to detect a first run and seed a default config file.
func UserConfigPath() (string, error) {
	return getConfigPath(false)
}

// Load assembles the configuration from defaults, the passgen.yaml search
// paths, PASSGEN_* environment variables, and the command's flags, in
// ascending precedence. An explicit config file path (from --config) takes
// priority over the search paths.
func Load(cmd *cobra.Command, explicitPath *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passgen")
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // passgen.yaml in the current dir wins over the above

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine on first run; other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("passgen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Write persists the configuration as YAML, creating the config directory if
// needed. The file is written 0600: it never holds secrets, but there is no
// reason for other users to read preferences either.
func Write(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
