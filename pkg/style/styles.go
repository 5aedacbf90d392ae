// Package style holds the lipgloss palette shared by uvw's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// NameWidth is the column the environment name is padded to in listings.
const NameWidth = 25

var (
	blue  = lipgloss.AdaptiveColor{Light: "#1F6FB2", Dark: "#5FA8E8"}
	slate = lipgloss.AdaptiveColor{Light: "#5C6670", Dark: "#9AA4AE"}
	green = lipgloss.AdaptiveColor{Light: "#2E8540", Dark: "#5BD27A"}
	red   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF7070"}
	amber = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFC94D"}
)

var (
	// NameStyle renders environment names
	NameStyle = lipgloss.NewStyle().Foreground(blue).Bold(true)
	// PathStyle renders what a link points to
	PathStyle = lipgloss.NewStyle().Foreground(slate)

	ErrorStyle   = lipgloss.NewStyle().Foreground(red).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(amber).Bold(true)
)

// Result line markers: done, kept as is, and would happen (dry run).
var (
	SuccessIndicator = lipgloss.NewStyle().Foreground(green).Bold(true).Render("✓")
	WarningIndicator = WarningStyle.Render("!")
	PendingIndicator = lipgloss.NewStyle().Foreground(slate).Render("○")
)
