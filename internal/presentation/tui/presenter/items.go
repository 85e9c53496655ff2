// Package presenter builds view models for the TUI.
package presenter

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/jetnews/internal/domain/article"
)

// Item is a view model for a post in the home list.
type Item struct {
	Post article.Post
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.Post.Title }

// Title returns the post title.
func (i *Item) Title() string { return i.Post.Title }

// PostID returns the post identifier.
func (i *Item) PostID() string { return i.Post.ID }

// Description returns the author line for list display.
func (i *Item) Description() string {
	parts := make([]string, 0, 3)
	if name := i.Post.Metadata.Author.Name; name != "" {
		parts = append(parts, name)
	}
	if i.Post.Metadata.Date != "" {
		parts = append(parts, i.Post.Metadata.Date)
	}
	if i.Post.Publication != nil && i.Post.Publication.Name != "" {
		parts = append(parts, i.Post.Publication.Name)
	}
	return strings.Join(parts, " - ")
}

// BuildPostListItems builds list items for posts, keeping repository order.
func BuildPostListItems(posts []article.Post) []list.Item {
	items := make([]list.Item, len(posts))
	for i, p := range posts {
		items[i] = &Item{Post: p}
	}
	return items
}

// ApplyPostList updates the list model with post items.
func ApplyPostList(model *list.Model, posts []article.Post) {
	model.SetItems(BuildPostListItems(posts))
}

// SelectedPostID returns the ID of the selected post.
func SelectedPostID(model list.Model) (string, bool) {
	item, ok := model.SelectedItem().(*Item)
	if !ok || item == nil || item.Post.ID == "" {
		return "", false
	}
	return item.Post.ID, true
}
