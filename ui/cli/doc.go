// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the command-line interface for Passgen.
//
// Running without a subcommand launches the interactive TUI; the generate,
// passphrase, wordlist and history subcommands cover scripted use.
package cli
