// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package export writes generated passwords to flat files. Two formats are
// supported: plain text (one password per line) and single-column CSV with a
// "password" header.
package export // import "github.com/InsolentFlunkey/password-generator/internal/export"

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Format selects the on-disk representation for saved passwords.
type Format string

const (
	FormatTXT Format = "txt"
	FormatCSV Format = "csv"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text", "":
		return FormatTXT, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want txt or csv)", s)
	}
}

// FormatForPath infers the format from a file extension, defaulting to TXT.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatTXT
}

// WriteTXT writes one password per line.
func WriteTXT(w io.Writer, passwords []string) error {
	for _, pw := range passwords {
		if _, err := fmt.Fprintln(w, pw); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes a single-column CSV with a "password" header row. Quoting
// follows encoding/csv's standard rules, so separators and quotes inside
// passwords round-trip cleanly.
func WriteCSV(w io.Writer, passwords []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"password"}); err != nil {
		return err
	}
	for _, pw := range passwords {
		if err := cw.Write([]string{pw}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write emits passwords in the requested format.
func Write(w io.Writer, passwords []string, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, passwords)
	default:
		return WriteTXT(w, passwords)
	}
}

// WriteFile saves passwords to path, inferring the format from the extension
// when format is empty. The file is created with restrictive permissions on
// Unix-like systems; Windows does not honor POSIX modes, so 0644 is used
// there for compatibility.
func WriteFile(path string, passwords []string, format Format) error {
	if format == "" {
		format = FormatForPath(path)
	}

	perm := os.FileMode(0600)
	if runtime.GOOS == "windows" {
		perm = 0644
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Write(f, passwords, format); err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	return f.Sync()
}
