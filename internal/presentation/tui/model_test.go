package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jetnews/internal/application/settings"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/domain/uistate"
	"github.com/tesso57/jetnews/internal/infrastructure/posts"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/bottombar"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/modal"
	"github.com/tesso57/jetnews/internal/presentation/tui/intent"
	"github.com/tesso57/jetnews/internal/presentation/tui/update"
)

func samplePost() article.Post {
	return article.Post{
		ID:          "post-1",
		Title:       "A Little Thing about Android Module Paths",
		Subtitle:    "How to configure your module paths",
		URL:         "https://medium.com/android-news/module-paths",
		Publication: &article.Publication{Name: "Android Developers"},
		Metadata: article.Metadata{
			Author:          article.PostAuthor{Name: "Pietro Maggi"},
			Date:            "August 02",
			ReadTimeMinutes: 1,
		},
		Paragraphs: []article.Paragraph{
			{Type: article.TextParagraph, Text: "Module paths matter."},
		},
	}
}

func TestNewModel(t *testing.T) {
	h := newTestHarness(t, samplePost())

	assert.Equal(t, navigation.Home, h.model.state.Screen())
	assert.True(t, h.model.state.Posts.IsSuccess())
	assert.Len(t, h.model.state.PostList.Items(), 1)
	assert.Equal(t, 80, h.model.state.Width)
	assert.Contains(t, h.model.View(), "A Little Thing about Android Module Paths")
}

func TestHome_LoadingAndError(t *testing.T) {
	m := NewModel(testSettings(), update.Deps{})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	assert.Contains(t, m.View(), "Loading posts...")

	m.Update(update.PostsLoadedMsg{State: uistate.Failure[[]article.Post](errors.New("offline"))})
	assert.Contains(t, m.View(), "Error: offline")
}

func TestHome_OpenSelectedPost(t *testing.T) {
	h := newTestHarness(t, samplePost())

	cmd := h.send(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, navigation.Article, h.model.state.Screen())
	assert.True(t, h.model.state.Article.Post.IsLoading())

	h.run(cmd)
	assert.True(t, h.model.state.Article.Post.IsSuccess())
	assert.Contains(t, h.model.View(), "Published in: Android Developers")
}

func TestHome_BookmarkMarker(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.bookmarks.On("ToggleBookmark", post.ID).Return().Once()

	assert.NotContains(t, h.model.View(), "[B]")
	h.press("b")
	assert.Contains(t, h.model.View(), "[B] "+post.Title)
	h.bookmarks.AssertExpectations(t)
}

func TestArticle_NullPublicationTitle(t *testing.T) {
	post := samplePost()
	post.Publication = nil
	h := newTestHarness(t, post)

	h.openArticle(t, post.ID)

	assert.Contains(t, h.model.View(), "Published in: null")
}

func TestArticle_BookmarkReflectsStore(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)

	assert.Contains(t, h.model.View(), bottombar.BookmarkIcon)
	assert.NotContains(t, h.model.View(), bottombar.BookmarkedIcon)

	// The store changing underneath is picked up on the next render.
	h.bookmarks.set(post.ID, true)
	assert.Contains(t, h.model.View(), bottombar.BookmarkedIcon)
}

func TestArticle_BookmarkToggleCallsMutatorOnce(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)
	h.bookmarks.On("ToggleBookmark", post.ID).Return()

	h.press("b")
	h.bookmarks.AssertNumberOfCalls(t, "ToggleBookmark", 1)
	assert.Contains(t, h.model.View(), bottombar.BookmarkedIcon)

	update.Dispatch(h.model.state, intent.FromZone(intent.ZoneBookmark), h.model.deps)
	h.bookmarks.AssertNumberOfCalls(t, "ToggleBookmark", 2)
	assert.Contains(t, h.model.View(), bottombar.BookmarkIcon)
	assert.NotContains(t, h.model.View(), bottombar.BookmarkedIcon)
}

func TestArticle_UnavailableDialog(t *testing.T) {
	tests := []struct {
		name  string
		open  string
		close string
	}{
		{name: "favorite then enter", open: "f", close: "enter"},
		{name: "settings then c", open: "t", close: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := samplePost()
			h := newTestHarness(t, post)
			h.openArticle(t, post.ID)

			h.press(tt.open)
			require.True(t, h.model.state.Article.DialogVisible)
			assert.Contains(t, h.model.View(), modal.UnavailableText)
			assert.Contains(t, h.model.View(), modal.CloseLabel)

			// Nothing but CLOSE dismisses the dialog.
			h.press("esc", "h", "q", "b", "s", "f", "t", "?", "j")
			assert.True(t, h.model.state.Article.DialogVisible)
			assert.Equal(t, navigation.Article, h.model.state.Screen())
			assert.False(t, h.model.state.QuitConfirm)
			assert.Nil(t, h.model.state.ShareSheet)
			h.bookmarks.AssertNotCalled(t, "ToggleBookmark", post.ID)

			h.press(tt.close)
			assert.False(t, h.model.state.Article.DialogVisible)
			assert.NotContains(t, h.model.View(), modal.UnavailableText)
		})
	}
}

func TestArticle_DialogClosesOnCloseZone(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)

	update.Dispatch(h.model.state, intent.FromZone(intent.ZoneSettings), h.model.deps)
	require.True(t, h.model.state.Article.DialogVisible)

	update.Dispatch(h.model.state, intent.FromZone(intent.ZoneBack), h.model.deps)
	assert.True(t, h.model.state.Article.DialogVisible)

	update.Dispatch(h.model.state, intent.FromZone(intent.ZoneDialogClose), h.model.deps)
	assert.False(t, h.model.state.Article.DialogVisible)
}

func TestArticle_DialogResetsOnFreshMount(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)
	h.press("f")
	require.True(t, h.model.state.Article.DialogVisible)

	h.openArticle(t, post.ID)
	assert.False(t, h.model.state.Article.DialogVisible)
}

func TestArticle_BackNavigatesHomeOnce(t *testing.T) {
	tests := []struct {
		name string
		back func(h *testHarness)
	}{
		{name: "key", back: func(h *testHarness) { h.press("esc") }},
		{name: "click", back: func(h *testHarness) {
			update.Dispatch(h.model.state, intent.FromZone(intent.ZoneBack), h.model.deps)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := samplePost()
			h := newTestHarness(t, post)
			h.openArticle(t, post.ID)
			require.Equal(t, 0, h.navigations("Home"))

			tt.back(h)

			assert.Equal(t, navigation.Home, h.model.state.Screen())
			assert.Equal(t, 1, h.navigations("Home"))
			assert.False(t, h.model.state.Article.DialogVisible)
		})
	}
}

func TestArticle_ShareOpensOneChooserRequest(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)

	h.press("s")

	require.Len(t, h.chooser.requests, 1)
	req := h.chooser.requests[0]
	assert.Equal(t, "Share post", req.Title)
	assert.Equal(t, "send", req.Intent.Action)
	assert.Equal(t, "text/plain", req.Intent.Type)
	assert.Contains(t, req.Intent.Payload(), post.Title)
	assert.Contains(t, req.Intent.Payload(), post.URL)

	require.NotNil(t, h.model.state.ShareSheet)
	view := h.model.View()
	assert.Contains(t, view, "Share post")
	assert.Contains(t, view, "> Copy to clipboard")

	h.press("j")
	assert.Equal(t, 1, h.model.state.ShareSheet.Cursor)

	cmd := h.send(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Nil(t, h.model.state.ShareSheet)
	h.run(cmd)

	require.Len(t, h.chooser.sent, 1)
	assert.Equal(t, "Shared via Open in browser", h.model.state.StatusMessage)
	assert.Len(t, h.chooser.requests, 1)
}

func TestArticle_ShareFailureShowsStatus(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)
	h.chooser.On("Send", 0).Return(errors.New("clipboard unavailable"))

	h.press("s")
	h.run(h.send(keyMsg("enter")))

	assert.Equal(t, "Share failed: clipboard unavailable", h.model.state.StatusMessage)
	assert.Contains(t, h.model.View(), "Share failed: clipboard unavailable")
	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Copy to clipboard", entry.Data["target"])
}

func TestArticle_ShareSheetCancel(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)

	h.press("s", "esc")

	assert.Nil(t, h.model.state.ShareSheet)
	assert.Equal(t, navigation.Article, h.model.state.Screen())
	assert.Empty(t, h.chooser.sent)
}

func TestArticle_FailedFetchRendersNothing(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.posts.On("GetPost", post.ID).Return(uistate.Failure[article.Post](errors.New("boom")))

	h.openArticle(t, post.ID)

	assert.True(t, h.model.state.Article.Post.IsError())
	view := h.model.View()
	assert.NotContains(t, view, "Published in")
	assert.NotContains(t, view, post.Title)
	assert.NotContains(t, view, bottombar.ShareIcon)

	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "load post failed", entry.Message)
	assert.Equal(t, post.ID, entry.Data["post_id"])

	// Actions that need a post are ignored.
	h.press("s", "f")
	assert.Nil(t, h.model.state.ShareSheet)
	assert.False(t, h.model.state.Article.DialogVisible)

	h.press("esc")
	assert.Equal(t, navigation.Home, h.model.state.Screen())
}

func TestArticle_PendingFetchRendersNothingAndCancelsOnBack(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)
	h.posts.block = true

	cmd := update.Navigate(h.model.state, navigation.ArticleDestination(post.ID), h.model.deps)
	require.NotNil(t, cmd)
	results := make(chan tea.Msg, 1)
	go func() { results <- cmd() }()

	assert.True(t, h.model.state.Article.Post.IsLoading())
	view := h.model.View()
	assert.NotContains(t, view, "Published in")
	assert.NotContains(t, view, post.Title)

	h.press("esc")
	assert.Equal(t, navigation.Home, h.model.state.Screen())

	select {
	case msg := <-results:
		fetched, ok := msg.(update.PostFetchedMsg)
		require.True(t, ok)
		assert.ErrorIs(t, fetched.State.Err(), context.Canceled)
		h.send(fetched)
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not cancelled")
	}

	assert.Equal(t, navigation.Home, h.model.state.Screen())
	assert.Contains(t, h.model.View(), post.Title)
}

func TestArticle_StaleResultIsDropped(t *testing.T) {
	first := samplePost()
	second := samplePost()
	second.ID = "post-2"
	second.Title = "Second post"
	h := newTestHarness(t, first, second)

	staleCmd := update.Navigate(h.model.state, navigation.ArticleDestination(first.ID), h.model.deps)
	freshCmd := update.Navigate(h.model.state, navigation.ArticleDestination(second.ID), h.model.deps)

	ctxs := func() []context.Context { return h.posts.contexts() }
	h.run(staleCmd)
	assert.True(t, h.model.state.Article.Post.IsLoading())
	assert.Equal(t, second.ID, h.model.state.Article.PostID)
	require.Len(t, ctxs(), 1)
	assert.ErrorIs(t, ctxs()[0].Err(), context.Canceled)

	h.run(freshCmd)
	got, ok := h.model.state.Article.Post.Data()
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
}

func TestArticle_SameKeyRemountDropsOlderResult(t *testing.T) {
	post := samplePost()
	h := newTestHarness(t, post)

	older := update.Navigate(h.model.state, navigation.ArticleDestination(post.ID), h.model.deps)
	newer := update.Navigate(h.model.state, navigation.ArticleDestination(post.ID), h.model.deps)

	h.run(older)
	assert.True(t, h.model.state.Article.Post.IsLoading())
	h.run(newer)
	assert.True(t, h.model.state.Article.Post.IsSuccess())
}

func TestQuitConfirm(t *testing.T) {
	h := newTestHarness(t, samplePost())

	h.press("q")
	require.True(t, h.model.state.QuitConfirm)
	assert.Contains(t, h.model.View(), modal.QuitText)

	h.press("n")
	assert.False(t, h.model.state.QuitConfirm)

	h.press("q")
	cmd := h.send(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuits(t *testing.T) {
	h := newTestHarness(t, samplePost())
	cmd := h.send(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	h := newTestHarness(t, samplePost())

	h.press("?")
	require.True(t, h.model.state.Help.ShowAll)
	assert.Contains(t, h.model.View(), "toggle help")

	h.press("?")
	assert.False(t, h.model.state.Help.ShowAll)
}

func TestWindowResizeRewrapsArticle(t *testing.T) {
	post := samplePost()
	post.Paragraphs = []article.Paragraph{{Type: article.TextParagraph, Text: strings.Repeat("wrap me ", 40)}}
	h := newTestHarness(t, post)
	h.openArticle(t, post.ID)

	h.send(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Equal(t, 40, h.model.state.Viewport.Width)
	for _, line := range strings.Split(h.model.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestPreview(t *testing.T) {
	post := posts.MustFixture("ac552dcc1741")

	tests := []struct {
		name string
		dark bool
	}{
		{name: "light"},
		{name: "dark", dark: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSettings()
			if tt.dark {
				cfg.Theme.Mode = settings.ThemeDark
			}
			out := Preview(post, cfg, 80, 40)

			assert.Contains(t, out, "Published in: "+post.Publication.Name)
			assert.Contains(t, out, bottombar.TextSettingsIcon)
			assert.Contains(t, out, bottombar.BookmarkIcon)
		})
	}
}
