package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jetnews/internal/application/settings"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/domain/uistate"
	"github.com/tesso57/jetnews/internal/infrastructure/share"
	"github.com/tesso57/jetnews/internal/presentation/tui/update"
)

type stubPostsRepo struct {
	mock.Mock
	posts []article.Post
	err   error
	// block makes GetPost wait until its context is cancelled.
	block bool

	mu      sync.Mutex
	gotCtxs []context.Context
}

func (s *stubPostsRepo) GetPost(ctx context.Context, id string) uistate.UiState[article.Post] {
	s.mu.Lock()
	s.gotCtxs = append(s.gotCtxs, ctx)
	s.mu.Unlock()

	if len(s.ExpectedCalls) > 0 {
		args := s.Called(id)
		st, _ := args.Get(0).(uistate.UiState[article.Post])
		return st
	}
	if s.block {
		<-ctx.Done()
		return uistate.Failure[article.Post](ctx.Err())
	}
	if s.err != nil {
		return uistate.Failure[article.Post](s.err)
	}
	for _, p := range s.posts {
		if p.ID == id {
			return uistate.Success(p)
		}
	}
	return uistate.Failure[article.Post](context.DeadlineExceeded)
}

func (s *stubPostsRepo) GetPosts(_ context.Context) uistate.UiState[[]article.Post] {
	if s.err != nil {
		return uistate.Failure[[]article.Post](s.err)
	}
	return uistate.Success(append([]article.Post(nil), s.posts...))
}

func (s *stubPostsRepo) contexts() []context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]context.Context(nil), s.gotCtxs...)
}

type stubBookmarks struct {
	mock.Mock
	mu  sync.Mutex
	ids map[string]bool
}

func (s *stubBookmarks) IsFavorite(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[postID]
}

func (s *stubBookmarks) ToggleBookmark(postID string) {
	s.Called(postID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = map[string]bool{}
	}
	s.ids[postID] = !s.ids[postID]
}

func (s *stubBookmarks) set(postID string, bookmarked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = map[string]bool{}
	}
	s.ids[postID] = bookmarked
}

type stubChooser struct {
	mock.Mock
	targets  []string
	requests []share.Request
	sent     []share.Intent
}

func (s *stubChooser) Request(in share.Intent) share.Request {
	req := share.Request{Title: share.ChooserTitle, Intent: in, Targets: append([]string(nil), s.targets...)}
	s.requests = append(s.requests, req)
	return req
}

func (s *stubChooser) Send(index int, in share.Intent) error {
	s.sent = append(s.sent, in)
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(index)
		return args.Error(0)
	}
	return nil
}

type testHarness struct {
	model     *Model
	posts     *stubPostsRepo
	bookmarks *stubBookmarks
	chooser   *stubChooser
	logs      *test.Hook
}

func testSettings() settings.Settings {
	return settings.Settings{
		Source: settings.SourceFake,
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down",
			UpPage: "ctrl+u,pgup", DownPage: "ctrl+d,pgdn",
			Open: "enter,l", Back: "esc,h", Quit: "q",
			Favorite: "f", Bookmark: "b", Share: "s", Settings: "t",
			Close: "enter,c",
		},
		Theme: settings.ThemeConfig{Mode: settings.ThemeLight},
	}
}

func newTestHarness(t *testing.T, posts ...article.Post) *testHarness {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := &testHarness{
		posts:     &stubPostsRepo{posts: posts},
		bookmarks: &stubBookmarks{},
		chooser:   &stubChooser{targets: []string{"Copy to clipboard", "Open in browser"}},
		logs:      hook,
	}
	h.model = NewModel(testSettings(), update.Deps{
		Posts:     h.posts,
		Bookmarks: h.bookmarks,
		Share:     h.chooser,
		Logger:    logger,
	})
	t.Cleanup(h.model.Close)

	h.send(tea.WindowSizeMsg{Width: 80, Height: 30})
	h.run(update.LoadPostsCmd(h.posts))
	return h
}

// send delivers msg and returns the resulting command without running it.
func (h *testHarness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.model.Update(msg)
	return cmd
}

// run executes cmd and feeds its message back into the model.
func (h *testHarness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		h.send(msg)
	}
}

func (h *testHarness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

// openArticle navigates to id and applies the fetch result.
func (h *testHarness) openArticle(t *testing.T, id string) {
	t.Helper()
	cmd := update.Navigate(h.model.state, navigation.ArticleDestination(id), h.model.deps)
	require.NotNil(t, cmd)
	h.run(cmd)
}

func (h *testHarness) navigations(screen string) int {
	n := 0
	for _, e := range h.logs.AllEntries() {
		if e.Message == "navigate" && e.Data["destination"] == screen {
			n++
		}
	}
	return n
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}
