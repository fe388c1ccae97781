// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/generator"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
)

func init() {
	i18n.Init("en")
}

func testConfig() config.Config {
	return config.Config{
		Language: "en",
		Generator: config.GeneratorConfig{
			Length: 16, Count: 1,
			Lowercase: true, Uppercase: true, Digits: true, Symbols: true,
			MinLowercase: 1, MinUppercase: 1, MinDigits: 1, MinSymbols: 1,
		},
		Phrase: config.PhraseConfig{Words: 6, Separator: "-"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := initialModel(testConfig())

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(mainModel)
	if m.menu.cursor != 1 {
		t.Fatalf("expected cursor 1 after down, got %d", m.menu.cursor)
	}

	updated, _ = m.Update(keyMsg("up"))
	m = updated.(mainModel)
	if m.menu.cursor != 0 {
		t.Fatalf("expected cursor 0 after up, got %d", m.menu.cursor)
	}

	// Cursor must not move past the ends.
	updated, _ = m.Update(keyMsg("up"))
	m = updated.(mainModel)
	if m.menu.cursor != 0 {
		t.Errorf("cursor moved past the top: %d", m.menu.cursor)
	}
}

func TestMenuOpensGeneratorView(t *testing.T) {
	m := initialModel(testConfig())

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(mainModel)
	if m.state != generateView {
		t.Fatalf("expected generateView, got %v", m.state)
	}
	if m.generator == nil {
		t.Fatal("generator sub-model not initialized")
	}
}

func TestGeneratorViewBackToMenu(t *testing.T) {
	m := initialModel(testConfig())
	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(mainModel)

	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(mainModel)
	if cmd == nil {
		t.Fatal("expected a command producing backToMenuMsg")
	}
	if _, ok := cmd().(backToMenuMsg); !ok {
		t.Fatal("expected backToMenuMsg from esc in generator view")
	}

	updated, _ = m.Update(backToMenuMsg{})
	m = updated.(mainModel)
	if m.state != menuView {
		t.Fatalf("expected menuView after backToMenuMsg, got %v", m.state)
	}
}

func TestGeneratorConfigFrom(t *testing.T) {
	gc := config.GeneratorConfig{
		Length: 20, Count: 3,
		Lowercase: true, Digits: true,
		MinLowercase: 2, MinDigits: 4,
		CustomSymbols: "@#", ExcludeAmbiguous: true,
	}
	cfg := generatorConfigFrom(gc)

	if cfg.Length != 20 || cfg.Count != 3 {
		t.Errorf("unexpected length/count: %d/%d", cfg.Length, cfg.Count)
	}
	if !cfg.Classes[generator.Lowercase].Enabled || cfg.Classes[generator.Lowercase].Minimum != 2 {
		t.Error("lowercase spec not mapped")
	}
	if cfg.Classes[generator.Uppercase].Enabled {
		t.Error("uppercase should be disabled")
	}
	if cfg.Classes[generator.Digits].Minimum != 4 {
		t.Errorf("digits minimum = %d, want 4", cfg.Classes[generator.Digits].Minimum)
	}
	if cfg.CustomSymbols != "@#" || !cfg.ExcludeAmbiguous {
		t.Error("symbol/ambiguous settings not mapped")
	}
}

func TestGeneratorToggleAndMinimum(t *testing.T) {
	gm := newGeneratorModel(testConfig())

	// Move focus to the lowercase row and toggle it off.
	gm.setFocus(rowLowercase)
	updated, _ := gm.Update(keyMsg(" "))
	gm = *updated.(*generatorModel)
	if gm.cfg.Classes[generator.Lowercase].Enabled {
		t.Fatal("expected lowercase to be toggled off")
	}

	// Raise and lower the digits minimum.
	gm.setFocus(rowDigits)
	updated, _ = gm.Update(tea.KeyMsg{Type: tea.KeyRight})
	gm = *updated.(*generatorModel)
	if got := gm.cfg.Classes[generator.Digits].Minimum; got != 2 {
		t.Fatalf("digits minimum = %d, want 2", got)
	}
	updated, _ = gm.Update(tea.KeyMsg{Type: tea.KeyLeft})
	gm = *updated.(*generatorModel)
	if got := gm.cfg.Classes[generator.Digits].Minimum; got != 1 {
		t.Fatalf("digits minimum = %d, want 1", got)
	}
}

func TestGeneratorProducesResults(t *testing.T) {
	gm := newGeneratorModel(testConfig())

	updated, _ := gm.Update(keyMsg("enter"))
	gm = *updated.(*generatorModel)
	if gm.err != nil {
		t.Fatalf("generate failed: %v", gm.err)
	}
	if len(gm.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(gm.results))
	}
	if len(gm.results[0]) != 16 {
		t.Errorf("expected length 16, got %d", len(gm.results[0]))
	}
	if !strings.Contains(gm.View(), gm.results[0]) {
		t.Error("result not rendered in view")
	}
}

func TestGeneratorSurfacesConstraintError(t *testing.T) {
	cfg := testConfig()
	cfg.Generator.Length = 2 // four minimums of one cannot fit
	gm := newGeneratorModel(cfg)

	updated, _ := gm.Update(keyMsg("enter"))
	gm = *updated.(*generatorModel)
	if gm.err == nil {
		t.Fatal("expected a constraint error")
	}
	if len(gm.results) != 0 {
		t.Errorf("expected no results on error, got %d", len(gm.results))
	}
	if !strings.Contains(gm.View(), "Error") {
		t.Error("error not rendered in view")
	}
}

func TestGeneratorPersistSettings(t *testing.T) {
	var saved *config.Config
	SaveConfig = func(cfg config.Config) error {
		saved = &cfg
		return nil
	}
	defer func() { SaveConfig = nil }()

	gm := newGeneratorModel(testConfig())
	gm.setFocus(rowSymbols)
	updated, _ := gm.Update(keyMsg(" ")) // toggle symbols off
	gm = *updated.(*generatorModel)

	updated, _ = gm.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	gm = *updated.(*generatorModel)

	if saved == nil {
		t.Fatal("expected SaveConfig to be called")
	}
	if saved.Generator.Symbols {
		t.Error("toggled symbols state not persisted")
	}
	if !saved.Generator.Lowercase || saved.Generator.Length != 16 {
		t.Error("unchanged settings not carried over")
	}
	if gm.status == "" {
		t.Error("expected a saved-status message")
	}
}

func TestPassphraseViewGenerates(t *testing.T) {
	pm := newPassphraseModel(testConfig())

	updated, _ := pm.Update(keyMsg("enter"))
	pm = *updated.(*passphraseModel)
	if pm.err != nil {
		t.Fatalf("generate failed: %v", pm.err)
	}
	if len(pm.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(pm.results))
	}
	if got := strings.Count(pm.results[0], "-"); got != 5 {
		t.Errorf("expected 5 separators in a 6-word phrase, got %d", got)
	}
}

func TestHistoryViewDisabledWithoutStore(t *testing.T) {
	hm := newHistoryModel()
	if !hm.disabled {
		t.Fatal("expected history view to be disabled without a store")
	}
	if !strings.Contains(hm.View(), "disabled") {
		t.Error("disabled notice not rendered")
	}
}

func TestAlignFooter(t *testing.T) {
	got := AlignFooter("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("expected width 20, got %d (%q)", len(got), got)
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("unexpected alignment: %q", got)
	}

	// Too-narrow widths degrade to a single separating space.
	got = AlignFooter("left", "right", 3)
	if got != "left right" {
		t.Errorf("expected single-space fallback, got %q", got)
	}
}
