// Package bottombar provides the article action bar.
package bottombar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/iconbutton"
	"github.com/tesso57/jetnews/internal/presentation/tui/intent"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
)

// Action icons.
const (
	FavoriteIcon     = "♥"
	BookmarkIcon     = "☆"
	BookmarkedIcon   = "★"
	ShareIcon        = "⇪"
	TextSettingsIcon = "Aa"
)

// Props defines the properties for the bottom bar component.
type Props struct {
	Bookmarked bool
	Width      int
	Theme      theme.Theme
	Zones      *zone.Manager
}

// Render lays out favorite, bookmark and share on the left and
// text settings pushed to the trailing edge.
func Render(p Props) string {
	button := func(id, icon string, active bool) string {
		return iconbutton.Render(iconbutton.Props{
			ID:     id,
			Icon:   icon,
			Active: active,
			Color:  p.Theme.OnSurface,
			Accent: p.Theme.Accent,
			Zones:  p.Zones,
		})
	}

	bookmarkIcon := BookmarkIcon
	if p.Bookmarked {
		bookmarkIcon = BookmarkedIcon
	}

	leading := lipgloss.JoinHorizontal(lipgloss.Top,
		button(intent.ZoneFavorite, FavoriteIcon, false),
		button(intent.ZoneBookmark, bookmarkIcon, p.Bookmarked),
		button(intent.ZoneShare, ShareIcon, false),
	)
	trailing := button(intent.ZoneSettings, TextSettingsIcon, false)

	spacer := p.Width - lipgloss.Width(leading) - lipgloss.Width(trailing)
	if spacer < 1 {
		spacer = 1
	}
	row := leading + strings.Repeat(" ", spacer) + trailing

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(p.Theme.Border).
		Render(row)
}
