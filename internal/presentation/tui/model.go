package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/tesso57/jetnews/internal/application/settings"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/domain/uistate"
	"github.com/tesso57/jetnews/internal/presentation/tui/intent"
	"github.com/tesso57/jetnews/internal/presentation/tui/state"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
	"github.com/tesso57/jetnews/internal/presentation/tui/update"
	"github.com/tesso57/jetnews/internal/presentation/tui/view"
	listview "github.com/tesso57/jetnews/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	deps     update.Deps
	zones    *zone.Manager
	state    *state.ModelState
}

// NewModel creates a new application model starting on the home screen.
func NewModel(cfg settings.Settings, deps update.Deps) *Model {
	m := &Model{
		settings: cfg,
		deps:     deps,
		zones:    zone.New(),
	}
	m.state = newModelState(cfg, m.isBookmarked)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.LoadPostsCmd(m.deps.Posts))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps)
		if handled {
			update.UpdateSizes(m.state)
			return m, cmd
		}
	case tea.MouseMsg:
		if in, ok := m.zoneIntent(msg); ok {
			cmd, _ := update.Dispatch(m.state, in, m.deps)
			update.UpdateSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.PostsLoadedMsg:
		update.HandlePostsLoadedMsg(m.state, msg, m.deps)
	case update.PostFetchedMsg:
		update.HandlePostFetchedMsg(m.state, msg, m.deps)
		return m, nil
	case update.ShareSentMsg:
		update.HandleShareSentMsg(m.state, msg, m.deps)
		return m, nil
	}

	if m.state.Posts.IsLoading() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.overlayVisible() {
		return m, tea.Batch(cmds...)
	}

	switch m.state.Screen() {
	case navigation.Home:
		m.state.PostList, cmd = m.state.PostList.Update(msg)
		cmds = append(cmds, cmd)
	case navigation.Article:
		if m.state.Article.Post.IsSuccess() {
			m.state.Viewport, cmd = m.state.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	out := view.Render(m.buildProps())
	if m.zones == nil {
		return out
	}
	return m.zones.Scan(out)
}

// Close releases the hit zone manager.
func (m *Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

func (m *Model) overlayVisible() bool {
	s := m.state
	return s.QuitConfirm || s.ShareSheet != nil || s.Help.ShowAll ||
		(s.Screen() == navigation.Article && s.Article.DialogVisible)
}

// zoneIntent resolves a left click release to the intent of the zone under it.
func (m *Model) zoneIntent(msg tea.MouseMsg) (intent.Intent, bool) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return intent.Intent{}, false
	}
	for _, id := range m.clickableZones() {
		if m.zones.Get(id).InBounds(msg) {
			return intent.FromZone(id), true
		}
	}
	return intent.Intent{}, false
}

func (m *Model) clickableZones() []string {
	s := m.state
	switch {
	case s.Screen() == navigation.Article && s.Article.DialogVisible:
		return []string{intent.ZoneDialogClose}
	case s.ShareSheet != nil:
		ids := make([]string, len(s.ShareSheet.Request.Targets))
		for i := range ids {
			ids[i] = intent.ZoneShareTarget(i)
		}
		return ids
	case s.Screen() == navigation.Article:
		return []string{
			intent.ZoneBack,
			intent.ZoneFavorite,
			intent.ZoneBookmark,
			intent.ZoneShare,
			intent.ZoneSettings,
		}
	}
	return nil
}

func (m *Model) isBookmarked(postID string) bool {
	return m.deps.Bookmarks != nil && m.deps.Bookmarks.IsFavorite(postID)
}

func newModelState(cfg settings.Settings, isBookmarked func(string) bool) *state.ModelState {
	st := &state.ModelState{
		Destination: navigation.HomeDestination(),
		Posts:       uistate.Loading[[]article.Post](),
		PostList:    newPostList(isBookmarked),
		Help:        help.New(),
		Spinner:     newSpinner(cfg.DarkTheme()),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		DarkTheme:   cfg.DarkTheme(),
	}

	st.PostList.KeyMap.PrevPage = st.Keys.UpPage
	st.PostList.KeyMap.NextPage = st.Keys.DownPage
	st.Viewport = newViewport(st.Keys)

	return st
}

func newPostList(isBookmarked func(string) bool) list.Model {
	l := list.New([]list.Item{}, listview.NewPostDelegate(isBookmarked), 0, 0)
	l.Title = "Jetnews"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(dark bool) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.For(dark).Accent)
	return s
}

func newViewport(keys state.KeyMap) viewport.Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   keys.UpPage,
		PageDown: keys.DownPage,
	}
	vp.MouseWheelEnabled = true
	return vp
}
