// Package theme defines the color palettes of the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a color palette.
type Theme struct {
	Primary   lipgloss.Color
	OnPrimary lipgloss.Color
	Surface   lipgloss.Color
	OnSurface lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Link      lipgloss.Color
	CodeBg    lipgloss.Color
	Border    lipgloss.Color
}

// Light is the default palette.
var Light = Theme{
	Primary:   lipgloss.Color("#6200EE"),
	OnPrimary: lipgloss.Color("#FFFFFF"),
	Surface:   lipgloss.Color("#FFFFFF"),
	OnSurface: lipgloss.Color("#000000"),
	Muted:     lipgloss.Color("244"),
	Accent:    lipgloss.Color("#D81B60"),
	Link:      lipgloss.Color("#3700B3"),
	CodeBg:    lipgloss.Color("#EEEEEE"),
	Border:    lipgloss.Color("63"),
}

// Dark is the dark palette.
var Dark = Theme{
	Primary:   lipgloss.Color("#BB86FC"),
	OnPrimary: lipgloss.Color("#000000"),
	Surface:   lipgloss.Color("#121212"),
	OnSurface: lipgloss.Color("#FFFFFF"),
	Muted:     lipgloss.Color("240"),
	Accent:    lipgloss.Color("#CF6679"),
	Link:      lipgloss.Color("#03DAC5"),
	CodeBg:    lipgloss.Color("#2D2D2D"),
	Border:    lipgloss.Color("205"),
}

// For returns the palette for the dark flag.
func For(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}
