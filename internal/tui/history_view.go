// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/InsolentFlunkey/password-generator/internal/db"
	"github.com/InsolentFlunkey/password-generator/internal/i18n"
	"github.com/InsolentFlunkey/password-generator/internal/model"
)

type historyModel struct {
	table       table.Model
	allEntries  []model.HistoryEntry // Master list of all entries
	filter      string
	isFiltering bool
	disabled    bool
	err         error
}

func newHistoryModel() historyModel {
	m := historyModel{}
	if !db.IsInitialized() {
		m.disabled = true
		return m
	}
	entries, err := db.GetHistory()
	if err != nil {
		m.err = err
		return m
	}
	m.allEntries = entries

	columns := []table.Column{
		{Title: i18n.T("history.header.timestamp"), Width: 20},
		{Title: i18n.T("history.header.user"), Width: 15},
		{Title: i18n.T("history.header.mode"), Width: 12},
		{Title: i18n.T("history.header.length"), Width: 8},
		{Title: i18n.T("history.header.count"), Width: 7},
		{Title: i18n.T("history.header.entropy"), Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15), // Placeholder height
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.rebuildTableRows()
	return m
}

// rebuildTableRows filters the master list of entries and populates the table.
func (m *historyModel) rebuildTableRows() {
	var rows []table.Row
	lowerFilter := strings.ToLower(m.filter)

	for _, entry := range m.allEntries {
		if m.filter != "" {
			match := strings.Contains(strings.ToLower(entry.Username), lowerFilter) ||
				strings.Contains(strings.ToLower(entry.Mode), lowerFilter) ||
				strings.Contains(strings.ToLower(entry.Timestamp.Format("2006-01-02 15:04:05")), lowerFilter)
			if !match {
				continue
			}
		}

		modeCell := successStyle.Render(entry.Mode)
		if entry.Mode == model.ModePassphrase {
			modeCell = specialStyle.Render(entry.Mode)
		}

		rows = append(rows, table.Row{
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Username,
			modeCell,
			strconv.Itoa(entry.Length),
			strconv.Itoa(entry.Count),
			fmt.Sprintf("%.1f", entry.EntropyBits),
		})
	}
	m.table.SetRows(rows)

	// Go to the top of the table after filtering
	if m.isFiltering {
		m.table.GotoTop()
	}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Adjust table height based on window size.
		m.table.SetHeight(msg.Height - 6)
		m.table.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		if m.disabled || m.err != nil {
			switch msg.String() {
			case "q", "esc", "enter":
				return &m, func() tea.Msg { return backToMenuMsg{} }
			}
			return &m, nil
		}

		// If filtering, handle input.
		if m.isFiltering {
			switch msg.Type {
			case tea.KeyEsc:
				m.isFiltering = false
				m.filter = ""
				m.rebuildTableRows()
			case tea.KeyEnter:
				m.isFiltering = false
			case tea.KeyBackspace:
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.rebuildTableRows()
				}
			case tea.KeyRunes:
				m.filter += string(msg.Runes)
				m.rebuildTableRows()
			}
			return &m, nil
		}

		switch msg.String() {
		case "/":
			m.isFiltering = true
			m.filter = ""
			m.rebuildTableRows()
			return &m, nil
		case "q", "esc":
			if m.filter != "" {
				m.filter = ""
				m.isFiltering = false
				m.rebuildTableRows()
				return &m, nil
			}
			return &m, func() tea.Msg { return backToMenuMsg{} }
		}
	}

	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)

	return &m, tea.Batch(cmds...)
}

func (m historyModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📜 "+i18n.T("history.title")) + "\n\n")

	if m.disabled {
		b.WriteString(helpStyle.Render(i18n.T("history.disabled")))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(i18n.T("history.error", m.err)))
		return b.String()
	}
	if len(m.table.Rows()) == 0 && m.filter == "" {
		b.WriteString(helpStyle.Render(i18n.T("history.empty")))
		b.WriteString(m.footerView())
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString(m.footerView())
	return b.String()
}

func (m historyModel) footerView() string {
	var filterStatus string
	if m.isFiltering {
		filterStatus = fmt.Sprintf("Filter [%s]: %s█", i18n.T("all"), m.filter)
	} else if m.filter != "" {
		filterStatus = fmt.Sprintf("Filter [%s]: %s (press 'esc' to clear)", i18n.T("all"), m.filter)
	} else {
		filterStatus = "Press / to filter..."
	}
	return helpStyle.Render(fmt.Sprintf("\n(%s) %s", i18n.T("history.help"), filterStatus))
}
