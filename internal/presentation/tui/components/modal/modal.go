// Package modal provides modal dialog components.
package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/jetnews/internal/presentation/tui/intent"
	"github.com/tesso57/jetnews/internal/presentation/tui/metrics"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Unavailable shows the unavailable-feature dialog.
	Unavailable
	// Share shows the share sheet.
	Share
	// Quit shows the quit confirmation.
	Quit
	// Help shows the help dialog.
	Help
)

// Dialog texts.
const (
	UnavailableText = "Functionality not available 🙈"
	CloseLabel      = "CLOSE"
	QuitText        = "Quit jetnews? (y/n)"
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
	Theme   theme.Theme
}

// Render renders the modal component centered in the given area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Theme.Border).
		Padding(1, 2)
	switch p.Kind {
	case Unavailable, Share, Quit:
		box = box.Width(metrics.DialogWidth)
	}

	content := box.Render(p.Body)
	if p.Width <= 0 || p.Height <= 0 {
		return content
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

// UnavailableBody renders the unavailable-feature message with its
// single CLOSE action aligned to the trailing edge.
func UnavailableBody(th theme.Theme, zones *zone.Manager) string {
	inner := metrics.DialogWidth - 4
	text := lipgloss.NewStyle().Foreground(th.OnSurface).Render(UnavailableText)
	closeBtn := lipgloss.NewStyle().
		Foreground(th.Primary).
		Bold(true).
		Render("[" + CloseLabel + "]")
	if zones != nil {
		closeBtn = zones.Mark(intent.ZoneDialogClose, closeBtn)
	}
	action := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(closeBtn)
	return text + "\n\n" + action
}

// ShareBody renders the share chooser with the cursor row highlighted.
func ShareBody(title string, targets []string, cursor int, th theme.Theme, zones *zone.Manager) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(th.Primary).Render(title))
	b.WriteString("\n")
	if len(targets) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(th.Muted).Render("No share targets available"))
	}
	for i, name := range targets {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(th.OnSurface)
		if i == cursor {
			prefix = "> "
			style = style.Foreground(th.Accent).Bold(true)
		}
		row := style.Render(fmt.Sprintf("%s%s", prefix, name))
		if zones != nil {
			row = zones.Mark(intent.ZoneShareTarget(i), row)
		}
		b.WriteString("\n")
		b.WriteString(row)
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(th.Muted).Render("(enter to send, esc to cancel)"))
	return b.String()
}
