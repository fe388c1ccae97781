// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/generator"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
)

// A simple style for focused text inputs.
var focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

// Form row indices. The text inputs (length, count, symbols) and the toggle
// rows share one focus cycle.
const (
	rowLength = iota
	rowCount
	rowLowercase
	rowUppercase
	rowDigits
	rowSymbols
	rowCustomSymbols
	rowExcludeAmbiguous
	generatorRowCount
)

// classForRow maps a toggle row back to its character class.
var classForRow = map[int]generator.CharClass{
	rowLowercase: generator.Lowercase,
	rowUppercase: generator.Uppercase,
	rowDigits:    generator.Digits,
	rowSymbols:   generator.Symbols,
}

type generatorModel struct {
	appCfg     config.Config
	cfg        generator.Config
	focusIndex int
	lengthIn   textinput.Model
	countIn    textinput.Model
	symbolsIn  textinput.Model
	saveIn     textinput.Model
	saving     bool
	presetIdx  int
	results    []string
	status     string
	err        error
}

// generatorConfigFrom maps persisted generator settings onto a request config.
func generatorConfigFrom(gc config.GeneratorConfig) generator.Config {
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

func newGeneratorModel(appCfg config.Config) generatorModel {
	cfg := generatorConfigFrom(appCfg.Generator)

	m := generatorModel{appCfg: appCfg, cfg: cfg}

	m.lengthIn = textinput.New()
	m.lengthIn.Cursor.Style = focusedStyle
	m.lengthIn.CharLimit = 4
	m.lengthIn.Width = 6
	m.lengthIn.SetValue(strconv.Itoa(cfg.Length))
	m.lengthIn.Focus()

	m.countIn = textinput.New()
	m.countIn.Cursor.Style = focusedStyle
	m.countIn.CharLimit = 4
	m.countIn.Width = 6
	m.countIn.SetValue(strconv.Itoa(cfg.Count))

	m.symbolsIn = textinput.New()
	m.symbolsIn.Cursor.Style = focusedStyle
	m.symbolsIn.CharLimit = 64
	m.symbolsIn.Width = 30
	m.symbolsIn.Placeholder = generator.DefaultSymbols
	m.symbolsIn.SetValue(cfg.CustomSymbols)

	m.saveIn = textinput.New()
	m.saveIn.Cursor.Style = focusedStyle
	m.saveIn.CharLimit = 255
	m.saveIn.Width = 40
	m.saveIn.Placeholder = "passwords.txt"

	return m
}

func (m generatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// syncInputs pulls the numeric and symbol inputs back into the config,
// ignoring values that do not parse (the old value stays in effect).
func (m *generatorModel) syncInputs() {
	if n, err := strconv.Atoi(strings.TrimSpace(m.lengthIn.Value())); err == nil && n > 0 {
		m.cfg.Length = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(m.countIn.Value())); err == nil && n > 0 {
		m.cfg.Count = n
	}
	m.cfg.CustomSymbols = m.symbolsIn.Value()
}

func (m *generatorModel) generate() {
	m.syncInputs()
	m.err = nil
	m.status = ""

	results, err := generator.Many(m.cfg.Count, func() (string, error) {
		return generator.Password(m.cfg)
	})
	if err != nil {
		m.err = err
		m.results = nil
		return
	}
	m.results = results

	size, bits := generator.CharacterEntropy(m.cfg)
	recordCharacterGeneration(m.cfg.Length, m.cfg.Count, size, bits)
}

// persistSettings writes the current form values back to passgen.yaml as the
// new defaults for future sessions. On success it returns a command notifying
// the router of the new preferences.
func (m *generatorModel) persistSettings() tea.Cmd {
	if SaveConfig == nil {
		return nil
	}
	cfg := m.appCfg
	cfg.Generator = config.GeneratorConfig{
		Length:           m.cfg.Length,
		Count:            m.cfg.Count,
		Lowercase:        m.cfg.Classes[generator.Lowercase].Enabled,
		Uppercase:        m.cfg.Classes[generator.Uppercase].Enabled,
		Digits:           m.cfg.Classes[generator.Digits].Enabled,
		Symbols:          m.cfg.Classes[generator.Symbols].Enabled,
		MinLowercase:     m.cfg.Classes[generator.Lowercase].Minimum,
		MinUppercase:     m.cfg.Classes[generator.Uppercase].Minimum,
		MinDigits:        m.cfg.Classes[generator.Digits].Minimum,
		MinSymbols:       m.cfg.Classes[generator.Symbols].Minimum,
		CustomSymbols:    m.cfg.CustomSymbols,
		ExcludeAmbiguous: m.cfg.ExcludeAmbiguous,
	}
	if err := SaveConfig(cfg); err != nil {
		m.err = err
		return nil
	}
	m.appCfg = cfg
	m.status = i18n.T("config.saved")
	return func() tea.Msg { return configSavedMsg{cfg: cfg} }
}

func (m generatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.saving {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.saving = false
				m.saveIn.Blur()
				return &m, nil
			case "enter":
				path := strings.TrimSpace(m.saveIn.Value())
				if path != "" {
					if err := saveResults(path, m.results); err != nil {
						m.err = err
					} else {
						m.status = i18n.T("gen.saved", len(m.results), path)
					}
				}
				m.saving = false
				m.saveIn.Blur()
				return &m, nil
			}
		}
		m.saveIn, cmd = m.saveIn.Update(msg)
		return &m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return &m, func() tea.Msg { return backToMenuMsg{} }

		case "enter":
			m.generate()
			return &m, nil

		case "ctrl+s":
			m.syncInputs()
			return &m, m.persistSettings()

		case "tab", "down":
			m.setFocus((m.focusIndex + 1) % generatorRowCount)
			return &m, nil
		case "shift+tab", "up":
			m.setFocus((m.focusIndex + generatorRowCount - 1) % generatorRowCount)
			return &m, nil

		case " ":
			switch m.focusIndex {
			case rowExcludeAmbiguous:
				m.cfg.ExcludeAmbiguous = !m.cfg.ExcludeAmbiguous
				return &m, nil
			case rowLowercase, rowUppercase, rowDigits, rowSymbols:
				c := classForRow[m.focusIndex]
				m.cfg.Classes[c].Enabled = !m.cfg.Classes[c].Enabled
				return &m, nil
			}

		case "left", "right":
			// Adjust the minimum of the focused class row.
			if c, ok := classForRow[m.focusIndex]; ok {
				if keyMsg.String() == "right" {
					m.cfg.Classes[c].Minimum++
				} else if m.cfg.Classes[c].Minimum > 0 {
					m.cfg.Classes[c].Minimum--
				}
				return &m, nil
			}

		case "p":
			if !m.focusOnTextInput() {
				m.presetIdx = (m.presetIdx + 1) % len(generator.PresetNames)
				if cfg, err := generator.PresetConfig(generator.PresetNames[m.presetIdx], m.cfg); err == nil {
					m.cfg = cfg
					m.lengthIn.SetValue(strconv.Itoa(cfg.Length))
					m.symbolsIn.SetValue(cfg.CustomSymbols)
				}
				return &m, nil
			}

		case "c":
			if !m.focusOnTextInput() && len(m.results) > 0 {
				if err := copyToClipboard(m.results[0]); err != nil {
					m.err = err
				} else {
					m.status = i18n.T("gen.copied_first")
				}
				return &m, nil
			}

		case "a":
			if !m.focusOnTextInput() && len(m.results) > 0 {
				if err := copyToClipboard(strings.Join(m.results, "\n")); err != nil {
					m.err = err
				} else {
					m.status = i18n.T("gen.copied_all", len(m.results))
				}
				return &m, nil
			}

		case "s":
			if !m.focusOnTextInput() && len(m.results) > 0 {
				m.saving = true
				m.saveIn.SetValue("")
				m.saveIn.Focus()
				return &m, textinput.Blink
			}
		}
	}

	switch m.focusIndex {
	case rowLength:
		m.lengthIn, cmd = m.lengthIn.Update(msg)
	case rowCount:
		m.countIn, cmd = m.countIn.Update(msg)
	case rowCustomSymbols:
		m.symbolsIn, cmd = m.symbolsIn.Update(msg)
	}
	m.syncInputs()
	return &m, cmd
}

// focusOnTextInput reports whether the focused row consumes printable keys.
func (m generatorModel) focusOnTextInput() bool {
	switch m.focusIndex {
	case rowLength, rowCount, rowCustomSymbols:
		return true
	}
	return false
}

func (m *generatorModel) setFocus(idx int) {
	m.focusIndex = idx
	m.lengthIn.Blur()
	m.countIn.Blur()
	m.symbolsIn.Blur()
	switch idx {
	case rowLength:
		m.lengthIn.Focus()
	case rowCount:
		m.countIn.Focus()
	case rowCustomSymbols:
		m.symbolsIn.Focus()
	}
}

func (m generatorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🔑 "+i18n.T("gen.title")) + "\n\n")

	cursor := func(row int) string {
		if m.focusIndex == row {
			return selectedItemStyle.Render("▸ ")
		}
		return "  "
	}

	b.WriteString(cursor(rowLength) + i18n.T("gen.length") + ": " + m.lengthIn.View() + "\n")
	b.WriteString(cursor(rowCount) + i18n.T("gen.count") + ": " + m.countIn.View() + "\n\n")

	classLabels := map[generator.CharClass]string{
		generator.Lowercase: i18n.T("gen.class.lowercase"),
		generator.Uppercase: i18n.T("gen.class.uppercase"),
		generator.Digits:    i18n.T("gen.class.digits"),
		generator.Symbols:   i18n.T("gen.class.symbols"),
	}
	for _, row := range []int{rowLowercase, rowUppercase, rowDigits, rowSymbols} {
		c := classForRow[row]
		spec := m.cfg.Classes[c]
		check := "[ ]"
		if spec.Enabled {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s %d)", check, classLabels[c], i18n.T("gen.min"), spec.Minimum)
		if !spec.Enabled {
			line = inactiveItemStyle.Render(line)
		}
		b.WriteString(cursor(row) + line + "\n")
	}

	b.WriteString("\n" + cursor(rowCustomSymbols) + i18n.T("gen.custom_symbols") + ": " + m.symbolsIn.View() + "\n")
	check := "[ ]"
	if m.cfg.ExcludeAmbiguous {
		check = "[x]"
	}
	b.WriteString(cursor(rowExcludeAmbiguous) + check + " " + i18n.T("gen.exclude_ambiguous") + "\n\n")

	b.WriteString(helpStyle.Render(i18n.T("gen.preset")+": "+generator.PresetNames[m.presetIdx]) + "\n")

	// Live entropy estimate for the current settings.
	size, bits := generator.CharacterEntropy(m.cfg)
	if bits > 0 {
		b.WriteString(i18n.T("gen.charset_size", size) + "  " + i18n.T("gen.entropy", bits) + "\n\n")
	} else {
		b.WriteString(specialStyle.Render(i18n.T("gen.entropy_degenerate")) + "\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(i18n.T("gen.error", m.err)) + "\n")
	case len(m.results) == 0:
		b.WriteString(helpStyle.Render(i18n.T("gen.output_placeholder")) + "\n")
	default:
		for _, p := range m.results {
			b.WriteString(outputStyle.Render(p) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusMessageStyle.Render(m.status) + "\n")
	}

	if m.saving {
		b.WriteString("\n" + i18n.T("gen.save_prompt") + " " + m.saveIn.View() + "\n")
		b.WriteString(helpStyle.Render(i18n.T("gen.help_save")))
	} else {
		b.WriteString("\n" + helpStyle.Render(i18n.T("gen.help")))
	}
	return b.String()
}
