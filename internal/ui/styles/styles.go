// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency between the host table and the picker.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme. Updated by Apply.
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	// HeaderStyle renders table headers (primary color, bold)
	HeaderStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// AccentStyle renders the selected picker row
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle renders secondary text such as host names next to patterns
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// WarningStyle renders skipped-include warnings
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// HighlightStyle for highlighting fuzzy-matched characters
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)

	// RoundedBorder frames the picker
	RoundedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Picker symbols
const (
	CursorSymbol = "›"
	RecentSymbol = "•"
)
