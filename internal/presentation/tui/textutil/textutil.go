// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated titles.
const Ellipsis = "…"

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims text to width cells, ending with an ellipsis when cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, Ellipsis)
}

// FitLine flattens text to one line no wider than width.
func FitLine(text string, width int) string {
	return Truncate(SingleLine(text), width)
}
