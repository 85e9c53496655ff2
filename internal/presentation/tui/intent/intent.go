// Package intent parses user input into UI intents.
package intent

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jetnews/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Up
	Down
	Open
	Back
	Favorite
	Bookmark
	Share
	Settings
	CloseDialog
	SelectShareTarget
)

// Intent represents a parsed user intent.
// Index is set for SelectShareTarget.
type Intent struct {
	Type  Type
	Index int
}

// Hit zone IDs for clickable components.
const (
	ZoneBack        = "article.back"
	ZoneFavorite    = "article.favorite"
	ZoneBookmark    = "article.bookmark"
	ZoneShare       = "article.share"
	ZoneSettings    = "article.settings"
	ZoneDialogClose = "dialog.close"

	shareTargetZonePrefix = "share.target."
)

// ZoneShareTarget returns the hit zone ID of a share sheet row.
func ZoneShareTarget(index int) string {
	return shareTargetZonePrefix + strconv.Itoa(index)
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Favorite):
		return Intent{Type: Favorite}
	case key.Matches(msg, keys.Bookmark):
		return Intent{Type: Bookmark}
	case key.Matches(msg, keys.Share):
		return Intent{Type: Share}
	case key.Matches(msg, keys.Settings):
		return Intent{Type: Settings}
	default:
		return Intent{Type: None}
	}
}

// FromDialogKeyMsg maps a key message while the unavailable-feature dialog is shown.
// Only the close binding is recognized.
func FromDialogKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	if key.Matches(msg, keys.Close) {
		return Intent{Type: CloseDialog}
	}
	return Intent{Type: None}
}

// FromZone maps a clicked hit zone to an intent.
func FromZone(id string) Intent {
	switch id {
	case ZoneBack:
		return Intent{Type: Back}
	case ZoneFavorite:
		return Intent{Type: Favorite}
	case ZoneBookmark:
		return Intent{Type: Bookmark}
	case ZoneShare:
		return Intent{Type: Share}
	case ZoneSettings:
		return Intent{Type: Settings}
	case ZoneDialogClose:
		return Intent{Type: CloseDialog}
	}
	if rest, ok := strings.CutPrefix(id, shareTargetZonePrefix); ok {
		if index, err := strconv.Atoi(rest); err == nil && index >= 0 {
			return Intent{Type: SelectShareTarget, Index: index}
		}
	}
	return Intent{Type: None}
}
