// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passgen.
//
// Usage:
//
//	go run . [flags]
//	./passgen [flags]
//
// This launches the Passgen CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/InsolentFlunkey/password-generator/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// main is the entrypoint for the Passgen CLI.
func main() {
	if os.Getenv("PASSGEN_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "Passgen version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("Passgen CLI error: %v", err)
		os.Exit(1)
	}
}
