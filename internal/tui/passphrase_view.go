// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/generator"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/wordlist"
)

const (
	phraseRowWords = iota
	phraseRowCount
	phraseRowSeparator
	phraseRowCapitalize
	phraseRowMax
)

type passphraseModel struct {
	appCfg      config.Config
	cfg         generator.PassphraseConfig
	sourceLabel string // where the words came from, for display
	focusIndex  int
	wordsIn     textinput.Model
	countIn     textinput.Model
	sepIn       textinput.Model
	saveIn      textinput.Model
	saving      bool
	results     []string
	status      string
	err         error
}

func newPassphraseModel(appCfg config.Config) passphraseModel {
	m := passphraseModel{
		appCfg: appCfg,
		cfg: generator.PassphraseConfig{
			WordCount:  appCfg.Phrase.Words,
			Separator:  appCfg.Phrase.Separator,
			Capitalize: appCfg.Phrase.Capitalize,
			Count:      1,
		},
	}

	if appCfg.Wordlist != "" {
		words, err := wordlist.Load(appCfg.Wordlist)
		if err != nil {
			m.err = err
			m.cfg.Words = wordlist.Fallback()
			m.sourceLabel = i18n.T("phrase.wordlist_fallback", len(m.cfg.Words))
		} else {
			m.cfg.Words = words
			m.sourceLabel = i18n.T("phrase.wordlist_file", len(words), appCfg.Wordlist)
		}
	} else {
		m.cfg.Words = wordlist.Fallback()
		m.sourceLabel = i18n.T("phrase.wordlist_fallback", len(m.cfg.Words))
	}

	m.wordsIn = textinput.New()
	m.wordsIn.Cursor.Style = focusedStyle
	m.wordsIn.CharLimit = 3
	m.wordsIn.Width = 6
	m.wordsIn.SetValue(strconv.Itoa(m.cfg.WordCount))
	m.wordsIn.Focus()

	m.countIn = textinput.New()
	m.countIn.Cursor.Style = focusedStyle
	m.countIn.CharLimit = 4
	m.countIn.Width = 6
	m.countIn.SetValue(strconv.Itoa(m.cfg.Count))

	m.sepIn = textinput.New()
	m.sepIn.Cursor.Style = focusedStyle
	m.sepIn.CharLimit = 8
	m.sepIn.Width = 10
	m.sepIn.SetValue(m.cfg.Separator)

	m.saveIn = textinput.New()
	m.saveIn.Cursor.Style = focusedStyle
	m.saveIn.CharLimit = 255
	m.saveIn.Width = 40
	m.saveIn.Placeholder = "passphrases.txt"

	return m
}

func (m passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *passphraseModel) syncInputs() {
	if n, err := strconv.Atoi(strings.TrimSpace(m.wordsIn.Value())); err == nil && n > 0 {
		m.cfg.WordCount = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(m.countIn.Value())); err == nil && n > 0 {
		m.cfg.Count = n
	}
	m.cfg.Separator = m.sepIn.Value()
}

func (m *passphraseModel) generate() {
	m.syncInputs()
	m.err = nil
	m.status = ""

	results, err := generator.Many(m.cfg.Count, func() (string, error) {
		return generator.Passphrase(m.cfg)
	})
	if err != nil {
		m.err = err
		m.results = nil
		return
	}
	m.results = results

	vocab, bits := generator.PassphraseEntropy(m.cfg)
	recordPassphraseGeneration(m.cfg.WordCount, m.cfg.Count, vocab, bits)
}

// persistSettings writes the current form values back to passgen.yaml as the
// new defaults for future sessions. On success it returns a command notifying
// the router of the new preferences.
func (m *passphraseModel) persistSettings() tea.Cmd {
	if SaveConfig == nil {
		return nil
	}
	cfg := m.appCfg
	cfg.Phrase = config.PhraseConfig{
		Words:      m.cfg.WordCount,
		Separator:  m.cfg.Separator,
		Capitalize: m.cfg.Capitalize,
	}
	if err := SaveConfig(cfg); err != nil {
		m.err = err
		return nil
	}
	m.appCfg = cfg
	m.status = i18n.T("config.saved")
	return func() tea.Msg { return configSavedMsg{cfg: cfg} }
}

func (m passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.setFocus((m.focusIndex + 1) % phraseRowMax)
			return &m, nil
		case "shift+tab", "up":
			m.setFocus((m.focusIndex + phraseRowMax - 1) % phraseRowMax)
			return &m, nil

		case " ":
			if m.focusIndex == phraseRowCapitalize {
				m.cfg.Capitalize = !m.cfg.Capitalize
				return &m, nil
			}

		case "c":
			if m.focusIndex == phraseRowCapitalize && len(m.results) > 0 {
				if err := copyToClipboard(m.results[0]); err != nil {
					m.err = err
				} else {
					m.status = i18n.T("gen.copied_first")
				}
				return &m, nil
			}

		case "a":
			if m.focusIndex == phraseRowCapitalize && len(m.results) > 0 {
				if err := copyToClipboard(strings.Join(m.results, "\n")); err != nil {
					m.err = err
				} else {
					m.status = i18n.T("gen.copied_all", len(m.results))
				}
				return &m, nil
			}

		case "s":
			if m.focusIndex == phraseRowCapitalize && len(m.results) > 0 {
				m.saving = true
				m.saveIn.SetValue("")
				m.saveIn.Focus()
				return &m, textinput.Blink
			}
		}
	}

	switch m.focusIndex {
	case phraseRowWords:
		m.wordsIn, cmd = m.wordsIn.Update(msg)
	case phraseRowCount:
		m.countIn, cmd = m.countIn.Update(msg)
	case phraseRowSeparator:
		m.sepIn, cmd = m.sepIn.Update(msg)
	}
	m.syncInputs()
	return &m, cmd
}

func (m *passphraseModel) setFocus(idx int) {
	m.focusIndex = idx
	m.wordsIn.Blur()
	m.countIn.Blur()
	m.sepIn.Blur()
	switch idx {
	case phraseRowWords:
		m.wordsIn.Focus()
	case phraseRowCount:
		m.countIn.Focus()
	case phraseRowSeparator:
		m.sepIn.Focus()
	}
}

func (m passphraseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📝 "+i18n.T("phrase.title")) + "\n\n")

	b.WriteString(helpStyle.Render(m.sourceLabel) + "\n")
	if len(m.cfg.Words) < wordlist.MinRecommended {
		b.WriteString(specialStyle.Render(i18n.T("phrase.wordlist_small", len(m.cfg.Words))) + "\n")
	}
	b.WriteString("\n")

	cursor := func(row int) string {
		if m.focusIndex == row {
			return selectedItemStyle.Render("▸ ")
		}
		return "  "
	}

	b.WriteString(cursor(phraseRowWords) + i18n.T("phrase.words") + ": " + m.wordsIn.View() + "\n")
	b.WriteString(cursor(phraseRowCount) + i18n.T("gen.count") + ": " + m.countIn.View() + "\n")
	b.WriteString(cursor(phraseRowSeparator) + i18n.T("phrase.separator") + ": " + m.sepIn.View() + "\n")
	check := "[ ]"
	if m.cfg.Capitalize {
		check = "[x]"
	}
	b.WriteString(cursor(phraseRowCapitalize) + check + " " + i18n.T("phrase.capitalize") + "\n\n")

	_, bits := generator.PassphraseEntropy(m.cfg)
	b.WriteString(i18n.T("phrase.entropy", bits) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(i18n.T("phrase.error", m.err)) + "\n")
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
		b.WriteString("\n" + helpStyle.Render(i18n.T("phrase.help")))
	}
	return b.String()
}
