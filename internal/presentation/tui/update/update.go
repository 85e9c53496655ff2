// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/jetnews/internal/application/usecase"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/domain/uistate"
	"github.com/tesso57/jetnews/internal/infrastructure/share"
	"github.com/tesso57/jetnews/internal/presentation/tui/components/content"
	"github.com/tesso57/jetnews/internal/presentation/tui/intent"
	"github.com/tesso57/jetnews/internal/presentation/tui/presenter"
	"github.com/tesso57/jetnews/internal/presentation/tui/state"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
)

var errNoRepository = errors.New("posts repository is not configured")

// Bookmarks reads and toggles bookmark membership.
type Bookmarks interface {
	IsFavorite(postID string) bool
	ToggleBookmark(postID string)
}

// ShareChooser builds share chooser requests and sends to the picked target.
type ShareChooser interface {
	Request(intent share.Intent) share.Request
	Send(index int, intent share.Intent) error
}

// Deps groups external dependencies for updates.
type Deps struct {
	Posts     usecase.PostsRepository
	Bookmarks Bookmarks
	Share     ShareChooser
	Logger    logrus.FieldLogger
}

// PostsLoadedMsg is emitted after loading the home post list.
type PostsLoadedMsg struct {
	State uistate.UiState[[]article.Post]
}

// PostFetchedMsg is emitted after fetching the post of a mounted article screen.
type PostFetchedMsg struct {
	PostID string
	Seq    int
	State  uistate.UiState[article.Post]
}

// ShareSentMsg is emitted after sending a post to a share target.
type ShareSentMsg struct {
	Target string
	Err    error
}

// LoadPostsCmd creates a command that loads all posts.
func LoadPostsCmd(posts usecase.PostsRepository) tea.Cmd {
	return func() tea.Msg {
		if posts == nil {
			return PostsLoadedMsg{State: uistate.Failure[[]article.Post](errNoRepository)}
		}
		return PostsLoadedMsg{State: posts.GetPosts(context.Background())}
	}
}

// FetchPostCmd creates a command that fetches one post under ctx.
// The result carries the key it was issued for.
func FetchPostCmd(ctx context.Context, posts usecase.PostsRepository, postID string, seq int) tea.Cmd {
	return func() tea.Msg {
		if posts == nil {
			return PostFetchedMsg{PostID: postID, Seq: seq, State: uistate.Failure[article.Post](errNoRepository)}
		}
		return PostFetchedMsg{PostID: postID, Seq: seq, State: posts.GetPost(ctx, postID)}
	}
}

// ShareCmd creates a command that sends the intent to the target at index.
func ShareCmd(chooser ShareChooser, req share.Request, index int) tea.Cmd {
	target := ""
	if index >= 0 && index < len(req.Targets) {
		target = req.Targets[index]
	}
	return func() tea.Msg {
		if chooser == nil {
			return ShareSentMsg{Target: target, Err: share.ErrNoTargets}
		}
		return ShareSentMsg{Target: target, Err: chooser.Send(index, req.Intent)}
	}
}

// Navigate moves to dest. Any in-flight post fetch is cancelled first;
// mounting an article starts a fresh fetch keyed by post ID and sequence.
func Navigate(s *state.ModelState, dest navigation.Destination, deps Deps) tea.Cmd {
	cancelFetch(s)
	s.Destination = dest
	s.ShareSheet = nil
	s.StatusMessage = ""
	logger(deps).WithFields(logrus.Fields{
		"destination": dest.Screen.String(),
		"post_id":     dest.PostID,
	}).Info("navigate")

	if dest.Screen != navigation.Article {
		s.Article.PostID = ""
		UpdateSizes(s)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.Article = state.ArticleState{
		PostID: dest.PostID,
		Seq:    s.Article.Seq + 1,
		Post:   uistate.Loading[article.Post](),
		Cancel: cancel,
	}
	s.Viewport.SetContent("")
	s.Viewport.GotoTop()
	UpdateSizes(s)
	return FetchPostCmd(ctx, deps.Posts, dest.PostID, s.Article.Seq)
}

func cancelFetch(s *state.ModelState) {
	if s.Article.Cancel != nil {
		s.Article.Cancel()
		s.Article.Cancel = nil
	}
}

// HandleKeyMsg processes key input for the active screen and overlay.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		cancelFetch(s)
		return tea.Quit, true
	}
	if s.QuitConfirm {
		return handleQuitView(s, msg)
	}
	if s.Screen() == navigation.Article && s.Article.DialogVisible {
		return Dispatch(s, intent.FromDialogKeyMsg(msg, s.Keys), deps)
	}
	if s.Screen() == navigation.Home && s.PostList.SettingFilter() {
		return nil, false
	}
	return Dispatch(s, intent.FromKeyMsg(msg, s.Keys), deps)
}

// Dispatch applies a parsed intent. Key and mouse input both end up here.
func Dispatch(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch {
	case s.QuitConfirm:
		return nil, true
	case s.Screen() == navigation.Article && s.Article.DialogVisible:
		if in.Type == intent.CloseDialog {
			s.Article.DialogVisible = false
		}
		return nil, true
	case s.ShareSheet != nil:
		return handleShareSheetIntent(s, in, deps)
	case s.Help.ShowAll:
		if in.Type == intent.ToggleHelp || in.Type == intent.Back {
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch in.Type {
	case intent.Quit:
		s.QuitConfirm = true
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	}

	switch s.Screen() {
	case navigation.Article:
		return handleArticleIntent(s, in, deps)
	default:
		return handleHomeIntent(s, in, deps)
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		cancelFetch(s)
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.QuitConfirm = false
		return nil, true
	}
	return nil, true
}

func handleHomeIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		if id, ok := presenter.SelectedPostID(s.PostList); ok {
			return Navigate(s, navigation.ArticleDestination(id), deps), true
		}
		return nil, true
	case intent.Bookmark:
		if id, ok := presenter.SelectedPostID(s.PostList); ok && deps.Bookmarks != nil {
			deps.Bookmarks.ToggleBookmark(id)
		}
		return nil, true
	}
	return nil, false
}

func handleArticleIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		return Navigate(s, navigation.HomeDestination(), deps), true
	case intent.Favorite, intent.Settings:
		if s.Article.Post.IsSuccess() {
			s.Article.DialogVisible = true
		}
		return nil, true
	case intent.Bookmark:
		post, ok := s.Article.Post.Data()
		if ok && deps.Bookmarks != nil {
			deps.Bookmarks.ToggleBookmark(post.ID)
		}
		return nil, true
	case intent.Share:
		post, ok := s.Article.Post.Data()
		if !ok {
			return nil, true
		}
		openShareSheet(s, post, deps)
		return nil, true
	}
	return nil, false
}

func openShareSheet(s *state.ModelState, post article.Post, deps Deps) {
	in := share.NewSendText(post.Title, post.URL)
	req := share.Request{Title: share.ChooserTitle, Intent: in}
	if deps.Share != nil {
		req = deps.Share.Request(in)
	}
	s.ShareSheet = &state.ShareSheet{Request: req}
	logger(deps).WithFields(logrus.Fields{
		"post_id": post.ID,
		"targets": len(req.Targets),
	}).Info("share requested")
}

func handleShareSheetIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	sheet := s.ShareSheet
	switch in.Type {
	case intent.Up:
		if sheet.Cursor > 0 {
			sheet.Cursor--
		}
	case intent.Down:
		if sheet.Cursor < len(sheet.Request.Targets)-1 {
			sheet.Cursor++
		}
	case intent.Open:
		return sendShare(s, sheet.Cursor, deps), true
	case intent.SelectShareTarget:
		return sendShare(s, in.Index, deps), true
	case intent.Back:
		s.ShareSheet = nil
	}
	return nil, true
}

func sendShare(s *state.ModelState, index int, deps Deps) tea.Cmd {
	req := s.ShareSheet.Request
	s.ShareSheet = nil
	return ShareCmd(deps.Share, req, index)
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateSizes(s)
	RefreshArticleViewport(s)
}

// HandlePostsLoadedMsg applies the loaded home posts.
func HandlePostsLoadedMsg(s *state.ModelState, msg PostsLoadedMsg, deps Deps) {
	s.Posts = msg.State
	if posts, ok := msg.State.Data(); ok {
		presenter.ApplyPostList(&s.PostList, posts)
	} else if err := msg.State.Err(); err != nil {
		logger(deps).WithError(err).Warn("load posts failed")
	}
	UpdateSizes(s)
}

// HandlePostFetchedMsg applies a fetch result to the mounted article.
// Results for another key are dropped.
func HandlePostFetchedMsg(s *state.ModelState, msg PostFetchedMsg, deps Deps) {
	log := logger(deps).WithField("post_id", msg.PostID)
	if s.Screen() != navigation.Article || msg.PostID != s.Article.PostID || msg.Seq != s.Article.Seq {
		log.Debug("dropping stale post result")
		return
	}

	cancelFetch(s)
	s.Article.Post = msg.State
	if err := msg.State.Err(); err != nil {
		log.WithError(err).Warn("load post failed")
		s.Viewport.SetContent("")
		return
	}
	RefreshArticleViewport(s)
}

// HandleShareSentMsg reports the share result in the status line.
func HandleShareSentMsg(s *state.ModelState, msg ShareSentMsg, deps Deps) {
	log := logger(deps).WithField("target", msg.Target)
	if msg.Err != nil {
		log.WithError(msg.Err).Warn("share failed")
		s.StatusMessage = fmt.Sprintf("Share failed: %s", strings.TrimSpace(msg.Err.Error()))
	} else {
		log.Info("shared")
		s.StatusMessage = fmt.Sprintf("Shared via %s", msg.Target)
	}
	UpdateSizes(s)
}

// RefreshArticleViewport re-renders the loaded post into the viewport.
func RefreshArticleViewport(s *state.ModelState) {
	post, ok := s.Article.Post.Data()
	if !ok || s.Screen() != navigation.Article {
		return
	}
	s.Viewport.SetContent(content.Render(content.Props{
		Post:  post,
		Width: s.Viewport.Width,
		Theme: theme.For(s.DarkTheme),
	}))
}

func logger(deps Deps) logrus.FieldLogger {
	if deps.Logger != nil {
		return deps.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
