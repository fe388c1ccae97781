// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/generator"
)

// pointUserConfigAt redirects the user config dir into a temp directory so
// tests never touch the real ~/.config.
func pointUserConfigAt(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

// captureStdout runs f while capturing everything written to os.Stdout.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	f()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestResolveBuildVersion_FromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{}
	info.Main.Version = "v1.2.3"
	info.Settings = []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc1234"},
		{Key: "vcs.time", Value: "2026-08-01T00:00:00Z"},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", v)
	}
	if c != "abc1234" {
		t.Errorf("commit = %q, want abc1234", c)
	}
	if d != "2026-08-01T00:00:00Z" {
		t.Errorf("date = %q", d)
	}
}

func TestResolveBuildVersion_DevFallback(t *testing.T) {
	v, _, _ := resolveBuildVersion(&debug.BuildInfo{})
	if v != "dev" {
		t.Errorf("version = %q, want dev", v)
	}
}

func TestGenerateCommand(t *testing.T) {
	pointUserConfigAt(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "-l", "20", "-n", "3"})

	out := captureStdout(t, func() {
		if err := root.Execute(); err != nil {
			t.Errorf("generate failed: %v", err)
		}
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %d: %q", len(lines), out)
	}
	for _, l := range lines {
		if len(l) != 20 {
			t.Errorf("password %q has length %d, want 20", l, len(l))
		}
	}
}

func TestGenerateCommand_EntropyFlag(t *testing.T) {
	pointUserConfigAt(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--entropy"})

	out := captureStdout(t, func() {
		if err := root.Execute(); err != nil {
			t.Errorf("generate failed: %v", err)
		}
	})

	if !strings.Contains(out, "estimated entropy") {
		t.Errorf("expected entropy estimate on stdout, got %q", out)
	}
}

func TestGenerateCommand_ConstraintError(t *testing.T) {
	pointUserConfigAt(t)

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "-l", "2"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	_ = captureStdout(t, func() {
		if err := root.Execute(); err == nil {
			t.Error("expected constraint violation for length 2 with four minimums")
		}
	})
}

func TestGenerateCommand_OutputFile(t *testing.T) {
	pointUserConfigAt(t)
	outFile := filepath.Join(t.TempDir(), "out.txt")

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "-n", "2", "-o", outFile})

	_ = captureStdout(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
	})

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines in output file, got %d", len(lines))
	}
}

func TestPassphraseCommand(t *testing.T) {
	pointUserConfigAt(t)

	root := NewRootCmd()
	root.SetArgs([]string{"passphrase", "-w", "4", "-s", "."})

	out := captureStdout(t, func() {
		if err := root.Execute(); err != nil {
			t.Errorf("passphrase failed: %v", err)
		}
	})

	phrase := strings.TrimSpace(out)
	if got := strings.Count(phrase, "."); got != 3 {
		t.Errorf("expected 3 separators in 4-word phrase, got %d (%q)", got, phrase)
	}
}

func TestWordlistCommand(t *testing.T) {
	pointUserConfigAt(t)

	listFile := filepath.Join(t.TempDir(), "words.txt")
	content := "alpha\nbravo\ncharlie\n123bad\n\ndelta\n"
	if err := os.WriteFile(listFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"wordlist", listFile})

	out := captureStdout(t, func() {
		if err := root.Execute(); err != nil {
			t.Errorf("wordlist failed: %v", err)
		}
	})

	if !strings.Contains(out, "4 usable words") {
		t.Errorf("expected 4 usable words in summary, got %q", out)
	}
	if !strings.Contains(out, "(1 lines rejected)") {
		t.Errorf("expected 1 rejected line in summary, got %q", out)
	}
}

func TestHistoryListDisabled(t *testing.T) {
	pointUserConfigAt(t)

	root := NewRootCmd()
	root.SetArgs([]string{"history", "list"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	_ = captureStdout(t, func() {
		if err := root.Execute(); err == nil {
			t.Error("expected an error when history is disabled")
		}
	})
}

func TestApplyGenerateFlags_PresetThenOverride(t *testing.T) {
	pointUserConfigAt(t)

	cmd := newGenerateCmd()
	if err := cmd.Flags().Set("preset", "pin"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("length", "10"); err != nil {
		t.Fatal(err)
	}

	base := generatorConfigFromSettings(config.GeneratorConfig{
		Length: 16, Count: 1,
		Lowercase: true, Uppercase: true, Digits: true, Symbols: true,
		MinLowercase: 1, MinUppercase: 1, MinDigits: 1, MinSymbols: 1,
	})
	cfg, err := applyGenerateFlags(cmd, base)
	if err != nil {
		t.Fatal(err)
	}

	// PIN preset enables digits only; the explicit --length wins over it.
	if cfg.Length != 10 {
		t.Errorf("length = %d, want flag override 10", cfg.Length)
	}
	if !cfg.Classes[generator.Digits].Enabled {
		t.Error("digits should be enabled by the pin preset")
	}
	if cfg.Classes[generator.Lowercase].Enabled || cfg.Classes[generator.Symbols].Enabled {
		t.Error("pin preset should disable non-digit classes")
	}
}

func TestWriteReadCompressedHistory(t *testing.T) {
	pointUserConfigAt(t)
	outFile := filepath.Join(t.TempDir(), "hist.json.zst")

	exported := historyExportFixture()
	if err := writeCompressedHistory(outFile, exported); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := readCompressedHistory(outFile)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.SchemaVersion != 1 {
		t.Errorf("schema version = %d, want 1", got.SchemaVersion)
	}
	if len(got.Entries) != len(exported.Entries) {
		t.Fatalf("entries = %d, want %d", len(got.Entries), len(exported.Entries))
	}
	if got.Entries[0].Mode != exported.Entries[0].Mode {
		t.Errorf("mode = %q, want %q", got.Entries[0].Mode, exported.Entries[0].Mode)
	}
}
