// Package iconbutton provides a small fixed-size clickable icon.
package iconbutton

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/jetnews/internal/presentation/tui/metrics"
)

// Props defines the properties for the icon button component.
type Props struct {
	ID     string
	Icon   string
	Active bool
	Color  lipgloss.Color
	Accent lipgloss.Color
	Zones  *zone.Manager
}

// Render renders the icon button. With a zone manager the button is
// marked as a hit zone under ID.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Width(metrics.IconButtonWidth+2*metrics.IconButtonPadding).
		Align(lipgloss.Center).
		Padding(0, metrics.IconButtonPadding).
		Foreground(p.Color)
	if p.Active {
		style = style.Foreground(p.Accent).Bold(true)
	}

	out := style.Render(p.Icon)
	if p.Zones != nil && p.ID != "" {
		out = p.Zones.Mark(p.ID, out)
	}
	return out
}
