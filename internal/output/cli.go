package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorDemo    = lipgloss.Color("#3B82F6") // Blue

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleRecord = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleDemoBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDemo)

	stylePriorityHigh = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	stylePriorityMedium = lipgloss.NewStyle().
				Foreground(colorWarning)

	stylePriorityLow = lipgloss.NewStyle().
				Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// RecordTitle formats a record title.
func (c *CLIFormatter) RecordTitle(title string) string {
	if c.IsColorEnabled() {
		return styleRecord.Render(title)
	}
	return title
}

// ModeBadge formats the current mode for display.
func (c *CLIFormatter) ModeBadge(mode string) string {
	if mode == "demo" && c.IsColorEnabled() {
		return styleDemoBadge.Render("[DEMO]")
	}
	if mode == "demo" {
		return "[DEMO]"
	}
	return ""
}

// Priority formats a task priority with its urgency color.
func (c *CLIFormatter) Priority(p model.Priority) string {
	text := string(p)
	if !c.IsColorEnabled() {
		return text
	}
	switch p {
	case model.PriorityHigh:
		return stylePriorityHigh.Render(text)
	case model.PriorityMedium:
		return stylePriorityMedium.Render(text)
	default:
		return stylePriorityLow.Render(text)
	}
}

// Checkbox renders a completion checkbox.
func (c *CLIFormatter) Checkbox(done bool) string {
	if done {
		if c.IsColorEnabled() {
			return styleSuccess.Render("[x]")
		}
		return "[x]"
	}
	return "[ ]"
}
