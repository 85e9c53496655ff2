package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/jetnews/internal/domain/navigation"
)

// FooterText returns the footer content for the current screen.
func FooterText(statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help for a screen.
func FooterHelpText(h help.Model, keys KeyMap, screen navigation.Screen) string {
	return h.ShortHelpView(ScreenBindings(keys, screen))
}

// ScreenBindings returns the keybindings active on a screen.
func ScreenBindings(keys KeyMap, screen navigation.Screen) []key.Binding {
	switch screen {
	case navigation.Article:
		return []key.Binding{keys.Back, keys.Favorite, keys.Bookmark, keys.Share, keys.Settings, keys.Help}
	default:
		return []key.Binding{keys.Up, keys.Down, keys.Open, keys.Bookmark, keys.Quit, keys.Help}
	}
}
