// Package layout stacks the screen slots vertically.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the slots of a screen. Empty slots are skipped.
type Props struct {
	Top    string
	Body   string
	Bottom string
	Footer string
}

// Render joins the non-empty slots top to bottom.
func Render(p Props) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Top, p.Body, p.Bottom, p.Footer} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
