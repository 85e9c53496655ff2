// Package navigation defines the closed set of screens the app can show.
package navigation

// Screen names a top-level screen.
type Screen int

const (
	Home Screen = iota
	Article
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case Home:
		return "Home"
	case Article:
		return "Article"
	default:
		return "Unknown"
	}
}

// Destination is a navigation target. PostID is only set for Article.
type Destination struct {
	Screen Screen
	PostID string
}

// HomeDestination returns the Home destination.
func HomeDestination() Destination {
	return Destination{Screen: Home}
}

// ArticleDestination returns the Article destination for a post.
func ArticleDestination(postID string) Destination {
	return Destination{Screen: Article, PostID: postID}
}
