// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Passgen.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/InsolentFlunkey/password-generator/internal/config"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/logging"
)

// SaveConfig persists updated preferences back to the config file. It is
// installed by the CLI at startup; a nil hook disables saving.
var SaveConfig func(cfg config.Config) error

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	generateView
	passphraseView
	historyView
	languageView
)

// backToMenuMsg signals that a sub-view wants to return to the main menu.
type backToMenuMsg struct{}

// languageChangedMsg signals that the language has changed and the UI should be re-initialized.
type languageChangedMsg struct{}

// configSavedMsg carries freshly persisted preferences up to the router so
// views opened later start from them.
type configSavedMsg struct {
	cfg config.Config
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	state     viewState
	cfg       config.Config
	menu      menuModel
	generator *generatorModel
	phrase    *passphraseModel
	history   *historyModel
	language  languageModel
	width     int
	height    int
	err       error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel(cfg config.Config) mainModel {
	return mainModel{
		state: menuView,
		cfg:   cfg,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.generate"),
				i18n.T("menu.passphrase"),
				i18n.T("menu.history"),
				i18n.T("menu.language"),
				i18n.T("menu.quit"),
			},
		},
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles all events (like key presses and
// window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case configSavedMsg:
		m.cfg = msg.cfg
		return m, nil

	case languageChangedMsg:
		// The language has changed. Re-initialize the entire model to apply new translations everywhere.
		newModel := initialModel(m.cfg)
		// Preserve the current window dimensions so the layout remains correct.
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case generateView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newModel tea.Model
		newModel, cmd = m.generator.Update(msg)
		m.generator = newModel.(*generatorModel)

	case passphraseView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newModel tea.Model
		newModel, cmd = m.phrase.Update(msg)
		m.phrase = newModel.(*passphraseModel)

	case historyView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newModel tea.Model
		newModel, cmd = m.history.Update(msg)
		m.history = newModel.(*historyModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, nil
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				m.cfg.Language = langCode
				if SaveConfig != nil {
					if err := SaveConfig(m.cfg); err != nil {
						m.err = fmt.Errorf("failed to save config: %w", err)
					}
				}

				// Signal that the language has changed so the entire UI can be re-initialized.
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0: // Generate passwords
					m.state = generateView
					newModel := newGeneratorModel(m.cfg)
					m.generator = &newModel
					return m, m.generator.Init()
				case 1: // Generate passphrases
					m.state = passphraseView
					newModel := newPassphraseModel(m.cfg)
					m.phrase = &newModel
					return m, m.phrase.Init()
				case 2: // Generation history
					m.state = historyView
					newModel := newHistoryModel()
					m.history = &newModel
					// Propagate the current window size so the table sizes correctly.
					var updatedModel tea.Model
					updatedModel, cmd = m.history.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
					m.history = updatedModel.(*historyModel)
					return m, cmd
				case 3: // Language
					m.state = languageView
					m.language = newLanguageModel()
					return m, nil
				case 4: // Quit
					return m, tea.Quit
				}
			case "L":
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
		}
	}

	return m, cmd
}

// View renders the TUI. It's called after every Update and delegates rendering
// to the currently active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		return errorStyle.Padding(1, 2).Render(fmt.Sprintf("An error occurred: %v", m.err))
	}

	switch m.state {
	case generateView:
		return m.generator.View()
	case passphraseView:
		return m.phrase.View()
	case historyView:
		return m.history.View()
	case languageView:
		return m.language.View()
	default: // menuView
		return m.menu.View(m.width)
	}
}

// View renders the main menu.
func (m menuModel) View(width int) string {
	title := mainTitleStyle.Render("🔐 " + i18n.T("menu.title"))
	subTitle := helpStyle.Render(i18n.T("menu.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	var menuItems []string
	for i, choice := range m.choices {
		if m.cursor == i {
			menuItems = append(menuItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			menuItems = append(menuItems, itemStyle.Render("  "+choice))
		}
	}

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2)
	menuPane := paneStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, menuItems...))

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")).Padding(0, 1).Italic(true)
	footerWidth := width
	if footerWidth <= 0 {
		footerWidth = 44
	}
	footer := footerStyle.Render(AlignFooter(i18n.T("menu.help"), "", footerWidth))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", menuPane, "", footer)
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	// Get the dynamically discovered locales from the i18n package.
	choices := i18n.GetAvailableLocales()

	// Create a sorted list of keys for stable iteration and display order.
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return languageModel{
		choices:     choices,
		orderedKeys: keys,
		cursor:      0,
	}
}

// Init for languageModel.
func (m languageModel) Init() tea.Cmd { return nil }

// Update for languageModel.
func (m languageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// View for languageModel.
func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("language.title"))

	var listItems []string
	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+displayName))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+displayName))
		}
	}

	paneStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(1, 2)
	listPane := paneStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	helpLine := helpStyle.Render(i18n.T("language.help"))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}

// Run is the main entrypoint for the TUI. It initializes and runs the Bubble Tea program.
func Run(cfg config.Config) {
	if _, err := tea.NewProgram(initialModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}
