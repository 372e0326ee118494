// Package tui provides the interactive terminal dashboard for Stardeck.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorAccent    = lipgloss.Color("#A5B4FC") // Indigo
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorOffline   = lipgloss.Color("#F472B6") // Pink
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for pane titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleClock is used for the header clock.
	StyleClock = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleFocus marks the current schedule entry.
	StyleFocus = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleCursor marks the selected row in the active pane.
	StyleCursor = lipgloss.NewStyle().
			Reverse(true)

	// StyleDone is used for completed tasks.
	StyleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(ColorMuted)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleWarning is used for transient messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleSuccess is used for completed habits.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleOffline is used for the offline picture panel.
	StyleOffline = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOffline)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for panes.
var (
	// StylePaneBox is used for inactive panes.
	StylePaneBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleActivePaneBox is used for the pane that receives keys.
	StyleActivePaneBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
)

// ProgressBar creates a progress bar string.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}

// paneBox returns the box style for a pane of the given outer width.
func paneBox(active bool, width int) lipgloss.Style {
	box := StylePaneBox
	if active {
		box = StyleActivePaneBox
	}
	// Width covers content and padding; the border adds two columns.
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box
}
