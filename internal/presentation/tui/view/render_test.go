package view

import (
	"strings"
	"testing"

	mainview "github.com/tesso57/jetnews/internal/presentation/tui/components/main"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/modal"
)

func TestRender_Slots(t *testing.T) {
	got := Render(Props{
		Top:    "TOPBAR",
		Main:   mainview.Props{Width: 40, Height: 3, Body: "BODY"},
		Bottom: "BOTTOMBAR",
		Footer: "FOOTER",
	})

	for _, want := range []string{"TOPBAR", "BODY", "BOTTOMBAR", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if strings.Index(got, "TOPBAR") > strings.Index(got, "BODY") {
		t.Error("top bar should precede body")
	}
}

func TestRender_ModalReplacesScreen(t *testing.T) {
	got := Render(Props{
		Top:   "TOPBAR",
		Main:  mainview.Props{Body: "BODY"},
		Modal: modal.Props{Visible: true, Kind: modal.Help, Body: "HELP", Width: 40, Height: 10},
	})

	if !strings.Contains(got, "HELP") {
		t.Errorf("missing modal body in %q", got)
	}
	if strings.Contains(got, "TOPBAR") || strings.Contains(got, "BODY") {
		t.Errorf("modal should replace the screen, got %q", got)
	}
}
