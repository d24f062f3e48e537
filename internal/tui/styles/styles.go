// Package styles defines shared lipgloss styles for console and TUI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for paths, counts and hints
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// MethodStyle highlights method names
	MethodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// BoxStyle frames the batch summary
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 2)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// Status icons shared by the printer and the TUI.
const (
	IconSuccess = "✓"
	IconFailure = "✗"
	IconPending = "○"
)
