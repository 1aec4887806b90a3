package cli

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output, tuned for dark terminals.
const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorHighlight = lipgloss.Color("#3B82F6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(7)
)

// Status markers.
var (
	markOK   = successStyle.Render("✓")
	markFail = errorStyle.Render("✗")
	markWarn = warningStyle.Render("!")
)
