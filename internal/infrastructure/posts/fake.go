package posts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tesso57/jetnews/internal/application/usecase"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/uistate"
)

// ErrSimulatedFailure is returned by FakeRepository when a failure is injected.
var ErrSimulatedFailure = errors.New("simulated network failure")

// FakeRepository serves fixture posts with simulated latency.
type FakeRepository struct {
	posts []article.Post
	delay time.Duration

	// FailEvery makes every n-th request fail. Zero disables failures.
	FailEvery int

	mu       sync.Mutex
	requests int
}

// NewFakeRepository constructs a FakeRepository over the given posts.
// A nil slice serves the built-in fixtures.
func NewFakeRepository(posts []article.Post, delay time.Duration) *FakeRepository {
	if posts == nil {
		posts = Fixtures()
	}
	return &FakeRepository{posts: posts, delay: delay}
}

// GetPost returns one post by ID.
func (r *FakeRepository) GetPost(ctx context.Context, id string) uistate.UiState[article.Post] {
	if err := r.simulateNetworkRequest(ctx); err != nil {
		return uistate.Failure[article.Post](err)
	}
	for _, p := range r.posts {
		if p.ID == id {
			return uistate.Success(p)
		}
	}
	return uistate.Failure[article.Post](fmt.Errorf("%w: %s", usecase.ErrPostNotFound, id))
}

// GetPosts returns all posts.
func (r *FakeRepository) GetPosts(ctx context.Context) uistate.UiState[[]article.Post] {
	if err := r.simulateNetworkRequest(ctx); err != nil {
		return uistate.Failure[[]article.Post](err)
	}
	out := make([]article.Post, len(r.posts))
	copy(out, r.posts)
	return uistate.Success(out)
}

func (r *FakeRepository) simulateNetworkRequest(ctx context.Context) error {
	r.mu.Lock()
	r.requests++
	fail := r.FailEvery > 0 && r.requests%r.FailEvery == 0
	r.mu.Unlock()

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if fail {
		return ErrSimulatedFailure
	}
	return nil
}
