// Package topbar provides the article top app bar.
package topbar

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/iconbutton"
	"github.com/tesso57/jetnews/internal/presentation/tui/intent"
	"github.com/tesso57/jetnews/internal/presentation/tui/textutil"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
)

// BackIcon is the navigation icon.
const BackIcon = "←"

// Props defines the properties for the top bar component.
type Props struct {
	Title string
	Width int
	Theme theme.Theme
	Zones *zone.Manager
}

// Render renders the top bar.
func Render(p Props) string {
	back := iconbutton.Render(iconbutton.Props{
		ID:    intent.ZoneBack,
		Icon:  BackIcon,
		Color: p.Theme.OnPrimary,
		Zones: p.Zones,
	})

	titleWidth := p.Width - lipgloss.Width(back)
	title := p.Title
	if p.Width > 0 {
		title = textutil.FitLine(title, titleWidth-1)
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(p.Theme.OnPrimary).
		Bold(true).
		PaddingLeft(1)
	if titleWidth > 0 {
		titleStyle = titleStyle.Width(titleWidth)
	}

	bar := lipgloss.NewStyle().Background(p.Theme.Primary)
	return bar.Render(lipgloss.JoinHorizontal(lipgloss.Center, back, titleStyle.Render(title)))
}
