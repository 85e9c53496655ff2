package posts

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/tesso57/jetnews/internal/application/usecase"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/uistate"
)

const allPostsKey = "posts:all"

// CachedRepository memoizes successful lookups of another repository.
// Failures are never cached.
type CachedRepository struct {
	next  usecase.PostsRepository
	cache *gocache.Cache
}

// NewCachedRepository wraps next with a TTL cache.
func NewCachedRepository(next usecase.PostsRepository, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// GetPosts returns all posts, from cache when fresh.
func (r *CachedRepository) GetPosts(ctx context.Context) uistate.UiState[[]article.Post] {
	if cached, ok := r.cache.Get(allPostsKey); ok {
		return uistate.Success(cached.([]article.Post))
	}
	result := r.next.GetPosts(ctx)
	if posts, ok := result.Data(); ok {
		r.cache.SetDefault(allPostsKey, posts)
		for _, p := range posts {
			r.cache.SetDefault(postKey(p.ID), p)
		}
	}
	return result
}

// GetPost returns one post, from cache when fresh.
func (r *CachedRepository) GetPost(ctx context.Context, id string) uistate.UiState[article.Post] {
	if cached, ok := r.cache.Get(postKey(id)); ok {
		return uistate.Success(cached.(article.Post))
	}
	result := r.next.GetPost(ctx, id)
	if post, ok := result.Data(); ok {
		r.cache.SetDefault(postKey(id), post)
	}
	return result
}

// Flush drops every cached entry.
func (r *CachedRepository) Flush() {
	r.cache.Flush()
}

func postKey(id string) string {
	return "post:" + id
}
