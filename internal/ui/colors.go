package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

// Palette shared by the TUI panes and the CLI renderers.
var (
	ColorAccent   = lipgloss.Color("39")  // cyan-blue
	ColorCategory = lipgloss.Color("214") // orange-yellow
	ColorMuted    = lipgloss.Color("241")
	ColorWarn     = lipgloss.Color("214")
	ColorErr      = lipgloss.Color("196")
	ColorPass     = lipgloss.Color("42")
	ColorSelected = lipgloss.Color("27")
)

var (
	SelectedStyle = lipgloss.NewStyle().
			Background(ColorSelected).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorCategory).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorErr).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// kindColors give each entity kind a stable hue across every pane.
var kindColors = map[catalog.Kind]lipgloss.Color{
	catalog.KindComponent: lipgloss.Color("42"),
	catalog.KindAPI:       lipgloss.Color("135"),
	catalog.KindSystem:    lipgloss.Color("39"),
	catalog.KindDomain:    lipgloss.Color("214"),
	catalog.KindResource:  lipgloss.Color("75"),
	catalog.KindGroup:     lipgloss.Color("212"),
	catalog.KindUser:      lipgloss.Color("250"),
	catalog.KindLocation:  lipgloss.Color("109"),
}

// KindColor returns the display color for a kind. Unknown kinds render
// in the error color so they stand out.
func KindColor(k catalog.Kind) lipgloss.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return ColorErr
}

// DetectTheme tells glamour which style set fits the terminal
// background. theme overrides detection when set to "dark" or "light".
func DetectTheme(theme string) string {
	switch theme {
	case "dark", "light":
		return theme
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
