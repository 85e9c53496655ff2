package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/domain/uistate"
	"github.com/tesso57/jetnews/internal/infrastructure/share"
)

// ArticleState is the state of one mounted article screen.
// Seq increases on every mount so results of a previous mount can be told apart.
type ArticleState struct {
	PostID        string
	Seq           int
	Post          uistate.UiState[article.Post]
	DialogVisible bool
	Cancel        context.CancelFunc
}

// Mounted reports whether an article screen is mounted.
func (a ArticleState) Mounted() bool {
	return a.PostID != ""
}

// ShareSheet is an open share chooser.
type ShareSheet struct {
	Request share.Request
	Cursor  int
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Destination   navigation.Destination
	Posts         uistate.UiState[[]article.Post]
	PostList      list.Model
	Article       ArticleState
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	QuitConfirm   bool
	ShareSheet    *ShareSheet
	StatusMessage string
	DarkTheme     bool
}

// Screen returns the current screen.
func (s *ModelState) Screen() navigation.Screen {
	return s.Destination.Screen
}
