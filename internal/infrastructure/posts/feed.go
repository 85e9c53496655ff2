package posts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/jetnews/internal/application/usecase"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/uistate"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Jetnews/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// FeedRepository serves posts parsed from RSS/Atom feeds.
type FeedRepository struct {
	urls           []string
	perFeedTimeout time.Duration
	logger         logrus.FieldLogger
}

// NewFeedRepository constructs a FeedRepository for the given feed URLs.
func NewFeedRepository(urls []string, perFeedTimeout time.Duration, logger logrus.FieldLogger) *FeedRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &FeedRepository{
		urls:           append([]string(nil), urls...),
		perFeedTimeout: perFeedTimeout,
		logger:         logger,
	}
}

// GetPosts fetches every feed concurrently and returns posts newest first.
// Individual feed failures are logged; the call fails only if every feed failed.
func (r *FeedRepository) GetPosts(ctx context.Context) uistate.UiState[[]article.Post] {
	posts, err := r.fetchAll(ctx)
	if err != nil {
		return uistate.Failure[[]article.Post](err)
	}
	return uistate.Success(posts)
}

// GetPost fetches the feeds and returns the post with the given ID.
func (r *FeedRepository) GetPost(ctx context.Context, id string) uistate.UiState[article.Post] {
	posts, err := r.fetchAll(ctx)
	if err != nil {
		return uistate.Failure[article.Post](err)
	}
	for _, p := range posts {
		if p.ID == id {
			return uistate.Success(p)
		}
	}
	return uistate.Failure[article.Post](fmt.Errorf("%w: %s", usecase.ErrPostNotFound, id))
}

type datedPost struct {
	post article.Post
	date time.Time
}

func (r *FeedRepository) fetchAll(ctx context.Context) ([]article.Post, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var all []datedPost
	var errs []error

	for _, url := range r.urls {
		url := strings.TrimSpace(url)
		if url == "" {
			continue
		}
		wg.Go(func() {
			feedCtx := ctx
			if r.perFeedTimeout > 0 {
				var cancel context.CancelFunc
				feedCtx, cancel = context.WithTimeout(ctx, r.perFeedTimeout)
				defer cancel()
			}

			items, err := fetchFeed(feedCtx, url)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.logger.WithError(err).WithField("feed", url).Warn("feed fetch failed")
				errs = append(errs, fmt.Errorf("%s: %w", url, err))
				return
			}
			all = append(all, items...)
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(all) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].date.After(all[j].date)
	})
	posts := make([]article.Post, len(all))
	for i, p := range all {
		posts[i] = p.post
	}
	return posts, nil
}

func fetchFeed(ctx context.Context, url string) ([]datedPost, error) {
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	var publication *article.Publication
	if strings.TrimSpace(parsed.Title) != "" {
		publication = &article.Publication{Name: parsed.Title}
		if parsed.Image != nil {
			publication.LogoURL = parsed.Image.URL
		}
	}

	out := make([]datedPost, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		out = append(out, datedPost{
			post: postFromItem(item, publication),
			date: itemDate(item),
		})
	}
	return out, nil
}

func postFromItem(item *gofeed.Item, publication *article.Publication) article.Post {
	id := item.GUID
	if id == "" {
		id = item.Link
	}
	if id == "" {
		id = item.Title
	}

	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}

	meta := article.Metadata{}
	if item.Author != nil {
		meta.Author = article.PostAuthor{Name: item.Author.Name}
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		meta.Author = article.PostAuthor{Name: item.Authors[0].Name}
	}
	if date := itemDate(item); !date.IsZero() {
		meta.Date = date.Format("January 02")
	}

	paragraphs := ParagraphsFromHTML(body)
	meta.ReadTimeMinutes = readTimeMinutes(paragraphs)

	var imageID string
	if item.Image != nil {
		imageID = item.Image.URL
	}

	return article.Post{
		ID:          id,
		Title:       item.Title,
		Subtitle:    plainText(item.Description),
		URL:         item.Link,
		Publication: publication,
		Metadata:    meta,
		Paragraphs:  paragraphs,
		ImageID:     imageID,
	}
}

func itemDate(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

const wordsPerMinute = 200

func readTimeMinutes(paragraphs []article.Paragraph) int {
	words := 0
	for _, p := range paragraphs {
		words += len(strings.Fields(p.Text))
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
