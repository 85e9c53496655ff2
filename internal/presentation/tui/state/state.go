// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/jetnews/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	UpPage   key.Binding
	DownPage key.Binding
	Open     key.Binding
	Back     key.Binding
	Quit     key.Binding
	Favorite key.Binding
	Bookmark key.Binding
	Share    key.Binding
	Settings key.Binding
	Close    key.Binding
	Help     key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.Open, k.Back, k.Quit},
		{k.Favorite, k.Bookmark, k.Share, k.Settings},
		{k.Close, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:       binding(cfg.Up, "up"),
		Down:     binding(cfg.Down, "down"),
		UpPage:   binding(cfg.UpPage, "pgup"),
		DownPage: binding(cfg.DownPage, "pgdn"),
		Open:     binding(cfg.Open, "open"),
		Back:     binding(cfg.Back, "back"),
		Quit:     binding(cfg.Quit, "quit"),
		Favorite: binding(cfg.Favorite, "favorite"),
		Bookmark: binding(cfg.Bookmark, "bookmark"),
		Share:    binding(cfg.Share, "share"),
		Settings: binding(cfg.Settings, "text settings"),
		Close:    binding(cfg.Close, "close"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(helpKey(keys), desc),
	)
}

// helpKey shows the first configured key in help text.
func helpKey(keys string) string {
	first, _, _ := strings.Cut(keys, ",")
	return strings.TrimSpace(first)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
