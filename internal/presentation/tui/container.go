// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/bottombar"
	mainview "github.com/tesso57/jetnews/internal/presentation/tui/components/main"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/modal"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/topbar"
	"github.com/tesso57/jetnews/internal/presentation/tui/state"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
	"github.com/tesso57/jetnews/internal/presentation/tui/update"
	"github.com/tesso57/jetnews/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	props := view.Props{
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}

	// Loading and failed articles render no content at all.
	if post, ok := m.articlePost(); ok {
		th := m.theme()
		props.Top = topbar.Render(topbar.Props{
			Title: article.PublishedInTitle(post),
			Width: m.state.Width,
			Theme: th,
			Zones: m.zones,
		})
		props.Bottom = bottombar.Render(bottombar.Props{
			Bookmarked: m.isBookmarked(post.ID),
			Width:      m.state.Width,
			Theme:      th,
			Zones:      m.zones,
		})
	}
	return props
}

func (m *Model) buildMainProps() mainview.Props {
	props := mainview.Props{
		Width:  m.state.Width,
		Height: update.BodyHeight(m.state),
	}

	switch m.state.Screen() {
	case navigation.Article:
		if _, ok := m.articlePost(); ok {
			props.Body = m.state.Viewport.View()
		}
	default:
		props.Header = m.homeTitle()
		props.Body = m.homeBody()
	}
	return props
}

func (m *Model) homeTitle() string {
	th := m.theme()
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(th.OnPrimary).
		Background(th.Primary).
		Padding(0, 1).
		Render("Jetnews") + "\n"
}

func (m *Model) homeBody() string {
	posts := m.state.Posts
	switch {
	case posts.IsLoading():
		return fmt.Sprintf("\n   %s Loading posts...", m.state.Spinner.View())
	case posts.IsError():
		return fmt.Sprintf("Error: %v", posts.Err())
	case len(m.state.PostList.Items()) == 0:
		return "No posts."
	default:
		return m.state.PostList.View()
	}
}

func (m *Model) buildModalProps() modal.Props {
	props := modal.Props{
		Width:  m.state.Width,
		Height: m.state.Height,
		Theme:  m.theme(),
	}

	switch {
	case m.state.QuitConfirm:
		props.Visible = true
		props.Kind = modal.Quit
		props.Body = modal.QuitText
	case m.state.Screen() == navigation.Article && m.state.Article.DialogVisible:
		props.Visible = true
		props.Kind = modal.Unavailable
		props.Body = modal.UnavailableBody(props.Theme, m.zones)
	case m.state.ShareSheet != nil:
		sheet := m.state.ShareSheet
		props.Visible = true
		props.Kind = modal.Share
		props.Body = modal.ShareBody(sheet.Request.Title, sheet.Request.Targets, sheet.Cursor, props.Theme, m.zones)
	case m.state.Help.ShowAll:
		props.Visible = true
		props.Kind = modal.Help
		props.Body = m.state.Help.View(&m.state.Keys)
	}
	return props
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys, m.state.Screen())
	return state.FooterText(m.state.StatusMessage, helpText)
}

func (m *Model) articlePost() (article.Post, bool) {
	if m.state.Screen() != navigation.Article {
		return article.Post{}, false
	}
	return m.state.Article.Post.Data()
}

func (m *Model) theme() theme.Theme {
	return theme.For(m.state.DarkTheme)
}
