package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// BookmarkRepository abstracts bookmark persistence.
type BookmarkRepository interface {
	List(ctx context.Context) ([]string, error)
	Set(ctx context.Context, postID string, bookmarked bool) error
}

// BookmarkService owns the post ID -> bookmarked relation.
// Reads are served from memory; toggles are persisted fire-and-forget.
type BookmarkService struct {
	repo   BookmarkRepository
	logger logrus.FieldLogger

	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewBookmarkService constructs a BookmarkService. A nil logger discards output.
func NewBookmarkService(repo BookmarkRepository, logger logrus.FieldLogger) *BookmarkService {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &BookmarkService{
		repo:   repo,
		logger: logger,
		ids:    make(map[string]struct{}),
	}
}

// Load primes the in-memory set from the repository.
func (s *BookmarkService) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	ids, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

// IsFavorite reports whether the post is bookmarked.
func (s *BookmarkService) IsFavorite(postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[postID]
	return ok
}

// ToggleBookmark flips the bookmark state of a post.
func (s *BookmarkService) ToggleBookmark(postID string) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return
	}

	s.mu.Lock()
	_, was := s.ids[postID]
	if was {
		delete(s.ids, postID)
	} else {
		s.ids[postID] = struct{}{}
	}
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Set(context.Background(), postID, !was); err != nil {
		s.logger.WithError(err).WithField("post_id", postID).Warn("failed to persist bookmark")
	}
}

// Bookmarked returns the bookmarked post IDs in sorted order.
func (s *BookmarkService) Bookmarked() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
