// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/jetnews/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/jetnews/internal/presentation/tui/components/main"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
// Top and Bottom are pre-rendered bars; empty bars are omitted.
type Props struct {
	Top    string
	Main   mainview.Props
	Bottom string
	Modal  modal.Props
	Footer string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	return layout.Render(layout.Props{
		Top:    p.Top,
		Body:   mainview.Render(p.Main),
		Bottom: p.Bottom,
		Footer: p.Footer,
	})
}
