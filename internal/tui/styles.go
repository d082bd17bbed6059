// Package tui provides the terminal dashboard for SkillHub.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the dashboard.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorAccent  = lipgloss.Color("#10B981") // Green
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorDemo    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the dashboard.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleRecord is used for record titles.
	StyleRecord = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// StyleDemo is used for the demo mode badge.
	StyleDemo = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDemo)

	// StyleLive is used for the live mode badge.
	StyleLive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleBox draws a section border.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleHelp is used for the key hints at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
