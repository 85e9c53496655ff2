package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jetnews/internal/application/settings"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/domain/uistate"
	"github.com/tesso57/jetnews/internal/presentation/tui/state"
	"github.com/tesso57/jetnews/internal/presentation/tui/update"
)

// Preview renders the article screen for post at the given size. It does
// not start a program or touch any repository.
func Preview(post article.Post, cfg settings.Settings, width, height int) string {
	m := &Model{settings: cfg}
	m.state = newModelState(cfg, m.isBookmarked)
	m.state.Destination = navigation.ArticleDestination(post.ID)
	m.state.Article = state.ArticleState{
		PostID: post.ID,
		Seq:    1,
		Post:   uistate.Success(post),
	}
	update.HandleWindowSize(m.state, tea.WindowSizeMsg{Width: width, Height: height})
	return m.View()
}
