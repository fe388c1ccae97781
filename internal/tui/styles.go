// package tui provides the terminal user interface for Passgen.
// This file defines the shared lipgloss styles used across the different
// views to ensure a consistent look and feel.
package tui // import "github.com/InsolentFlunkey/password-generator/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
)

// Styles defines the reusable lipgloss styles for various UI components.
var (
	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Disabled form rows (e.g. a character class that is toggled off)
	inactiveItemStyle = lipgloss.NewStyle().
				Strikethrough(true).
				Foreground(colorSubtle)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Success messages
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Special attention messages (e.g. weak-entropy warnings)
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	// Main title on the menu
	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 3)

	// Titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	// Lists
	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Generated secrets
	outputStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)

	// Status messages
	statusMessageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(colorWhite).
				Background(colorHighlight)
)
