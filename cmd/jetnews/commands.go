package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/jetnews/internal/application/settings"
	"github.com/tesso57/jetnews/internal/application/usecase"
	"github.com/tesso57/jetnews/internal/infrastructure/bookmarks"
	"github.com/tesso57/jetnews/internal/infrastructure/config"
	"github.com/tesso57/jetnews/internal/infrastructure/logging"
	"github.com/tesso57/jetnews/internal/infrastructure/posts"
	"github.com/tesso57/jetnews/internal/presentation/tui"
	"github.com/tesso57/jetnews/internal/presentation/tui/update"
)

const (
	feedTimeout  = 15 * time.Second
	previewPost  = "ac552dcc1741"
	loadDeadline = 5 * time.Second
)

// RunCmd starts the interactive reader.
type RunCmd struct{}

// Run loads settings, wires the collaborators and runs the program.
func (r *RunCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := store.Settings

	logger, closer, err := logging.New(cfg.LogFile, cli.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.WithFields(logrus.Fields{
		"config": store.Path(),
		"source": cfg.Source,
	}).Info("starting")

	bookmarkStore := bookmarks.NewStore(cfg.BookmarksFile)
	defer bookmarkStore.Close()
	bookmarkSvc := usecase.NewBookmarkService(bookmarkStore, logger)
	ctx, cancel := context.WithTimeout(context.Background(), loadDeadline)
	if err := bookmarkSvc.Load(ctx); err != nil {
		logger.WithError(err).Warn("load bookmarks failed")
	}
	cancel()

	model := tui.NewModel(cfg, update.Deps{
		Posts:     usecase.NewPostService(buildRepository(cfg, logger)),
		Bookmarks: bookmarkSvc,
		Share:     tui.DefaultChooser(),
		Logger:    logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// PreviewCmd renders the article screen for a sample post without a program.
type PreviewCmd struct {
	Dark   bool   `help:"Use the dark theme."`
	Post   string `help:"Sample post ID." default:"ac552dcc1741"`
	Width  int    `help:"Preview width." default:"80"`
	Height int    `help:"Preview height." default:"40"`
}

// Run prints the preview.
func (p *PreviewCmd) Run(cli *CLI) error {
	return p.render(os.Stdout, previewSettings(cli.Config))
}

func (p *PreviewCmd) render(out io.Writer, cfg settings.Settings) error {
	if p.Dark {
		cfg.Theme.Mode = settings.ThemeDark
	}

	id := p.Post
	if id == "" {
		id = previewPost
	}
	post, ok := posts.Fixture(id)
	if !ok {
		return fmt.Errorf("unknown sample post %q", id)
	}

	_, err := fmt.Fprintln(out, tui.Preview(post, cfg, p.Width, p.Height))
	return err
}

// previewSettings uses the configured key map when a config exists and
// built-in defaults otherwise.
func previewSettings(path string) settings.Settings {
	store, err := config.Load(path)
	if err != nil {
		return settings.Settings{}
	}
	return store.Settings
}

func buildRepository(cfg settings.Settings, logger logrus.FieldLogger) usecase.PostsRepository {
	switch cfg.Source {
	case settings.SourceFeeds:
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		return posts.NewCachedRepository(posts.NewFeedRepository(cfg.Feeds, feedTimeout, logger), ttl)
	default:
		delay := time.Duration(cfg.FakeDelayMillis) * time.Millisecond
		return posts.NewFakeRepository(nil, delay)
	}
}
