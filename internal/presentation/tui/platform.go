package tui

import (
	"github.com/tesso57/jetnews/internal/infrastructure/share"
)

// DefaultChooser offers the share targets available on this machine.
func DefaultChooser() *share.Chooser {
	return share.NewChooser(
		share.NewClipboardTarget(),
		share.NewBrowserTarget(),
	)
}
