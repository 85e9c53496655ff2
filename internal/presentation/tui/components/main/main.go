// Package mainview provides the fixed-size body slot of a screen.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render renders the header above the body, clipped to Height lines.
func Render(p Props) string {
	style := lipgloss.NewStyle()
	if p.Width > 0 {
		style = style.Width(p.Width).MaxWidth(p.Width)
	}
	if p.Height > 0 {
		style = style.Height(p.Height).MaxHeight(p.Height)
	}

	content := p.Body
	switch {
	case p.Header == "":
	case p.Body == "":
		content = p.Header
	default:
		content = p.Header + "\n" + p.Body
	}
	return style.Render(content)
}
