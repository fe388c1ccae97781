// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWriteTXT_RoundTrip(t *testing.T) {
	passwords := []string{"abc123", "x#y z", "trailing-space ", "q"}

	var buf bytes.Buffer
	if err := WriteTXT(&buf, passwords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-reading line by line must yield the original sequence exactly.
	var got []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		got = append(got, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !reflect.DeepEqual(got, passwords) {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, passwords)
	}
}

func TestWriteCSV(t *testing.T) {
	passwords := []string{"plain", `with"quote`, "with,comma"}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, passwords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != len(passwords)+1 {
		t.Fatalf("expected %d records, got %d", len(passwords)+1, len(records))
	}
	if records[0][0] != "password" {
		t.Fatalf("expected 'password' header, got %q", records[0][0])
	}
	for i, pw := range passwords {
		if records[i+1][0] != pw {
			t.Fatalf("row %d: got %q, want %q", i+1, records[i+1][0], pw)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"txt", FormatTXT, false},
		{"TEXT", FormatTXT, false},
		{"", FormatTXT, false},
		{"csv", FormatCSV, false},
		{" CSV ", FormatCSV, false},
		{"xlsx", "", true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseFormat(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	if FormatForPath("out.csv") != FormatCSV {
		t.Fatalf("expected CSV for .csv path")
	}
	if FormatForPath("out.TXT") != FormatTXT {
		t.Fatalf("expected TXT for .TXT path")
	}
	if FormatForPath("out") != FormatTXT {
		t.Fatalf("expected TXT default for bare path")
	}
}

func TestWriteFile_InfersFormat(t *testing.T) {
	dir := t.TempDir()
	passwords := []string{"one", "two"}

	csvPath := filepath.Join(dir, "out.csv")
	if err := WriteFile(csvPath, passwords, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "password\n") {
		t.Fatalf("expected csv header, got %q", string(data))
	}

	txtPath := filepath.Join(dir, "out.txt")
	if err := WriteFile(txtPath, passwords, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err = os.ReadFile(txtPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Fatalf("unexpected txt content %q", string(data))
	}
}
