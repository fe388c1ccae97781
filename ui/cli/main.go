// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Passgen using the
// Cobra library. It defines the root command, subcommands (generate,
// passphrase, wordlist, history), flags, and the main entry point for
// execution.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/db"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/logging"
	"github.com/InsolentFlunkey/password-generator/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// setupDefaultServices loads the configuration, initializes i18n, and opens
// the optional history store. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.Load(cmd, explicitPath)
	if err != nil {
		return fmt.Errorf("%s", i18n.T("config.error_load", err))
	}

	// First run: persist the defaults so subsequent runs have a file to edit.
	if explicitPath == nil {
		if userPath, perr := config.UserConfigPath(); perr == nil {
			if _, serr := os.Stat(userPath); os.IsNotExist(serr) {
				if writeErr := config.Write(&appConfig, false); writeErr != nil {
					// The app runs fine on defaults; just warn.
					log.Warnf("could not write default config file: %v", writeErr)
				}
			}
		}
	}

	i18n.Init(appConfig.Language)

	// History is opt-in. When it is off, db stays uninitialized and all
	// recording helpers become no-ops.
	if appConfig.History.Enabled && !db.IsInitialized() {
		if _, err := db.Init(appConfig.History.Type, appConfig.History.DSN); err != nil {
			return fmt.Errorf("%s", i18n.T("config.error_init_db", err))
		}
	}

	// Let the TUI persist preference changes (e.g. language) back to disk.
	tui.SaveConfig = func(cfg config.Config) error {
		appConfig = cfg
		return config.Write(&appConfig, false)
	}

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Passgen generates random passwords and wordlist passphrases.",
		Long: `Passgen is a local password and passphrase generator.
Character-mode passwords honor per-class minimum counts and are always
drawn from crypto-grade randomness; passphrase mode picks words from a
configurable wordlist. Entropy estimates are shown for every run.

Running without a subcommand launches the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Println(compositeVersion())
				os.Exit(0)
			}
			if verbose {
				db.SetDebug(true)
				logging.SetDebug(true)
			}
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Config and i18n are already initialized by PersistentPreRunE.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				// Piped output gets the help text instead of a broken TUI.
				_ = cmd.Help()
				return
			}
			tui.Run(appConfig)
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logs)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("history.type", "sqlite", "History database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("history.dsn", "", "History database connection string (DSN)")

	// A lightweight `version` subcommand so users and CI can run `passgen version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", v)
			fmt.Printf("commit: %s\n", c)
			if d != "" {
				fmt.Printf("built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newGenerateCmd(),
		newPassphraseCmd(),
		newWordlistCmd(),
		newHistoryCmd(),
		versionCmd,
	)

	return cmd
}

// compositeVersion builds a single human-readable version string.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/InsolentFlunkey/password-generator" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
