// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/domain/uistate"
)

// ErrPostNotFound is returned when a repository has no post for an ID.
var ErrPostNotFound = errors.New("post not found")

// PostsRepository abstracts post lookup.
type PostsRepository interface {
	GetPost(ctx context.Context, id string) uistate.UiState[article.Post]
	GetPosts(ctx context.Context) uistate.UiState[[]article.Post]
}

// PostService coordinates post lookups for the screens.
type PostService struct {
	Repo PostsRepository
}

// NewPostService constructs a PostService.
func NewPostService(repo PostsRepository) PostService {
	return PostService{Repo: repo}
}

// GetPost looks up one post. A cancelled context always yields a failure.
func (s PostService) GetPost(ctx context.Context, id string) uistate.UiState[article.Post] {
	id = strings.TrimSpace(id)
	if id == "" {
		return uistate.Failure[article.Post](fmt.Errorf("post id is empty"))
	}
	if s.Repo == nil {
		return uistate.Failure[article.Post](fmt.Errorf("posts repository is not configured"))
	}
	result := s.Repo.GetPost(ctx, id)
	if err := ctx.Err(); err != nil {
		return uistate.Failure[article.Post](err)
	}
	return result
}

// GetPosts lists all posts.
func (s PostService) GetPosts(ctx context.Context) uistate.UiState[[]article.Post] {
	if s.Repo == nil {
		return uistate.Failure[[]article.Post](fmt.Errorf("posts repository is not configured"))
	}
	result := s.Repo.GetPosts(ctx)
	if err := ctx.Err(); err != nil {
		return uistate.Failure[[]article.Post](err)
	}
	return result
}
