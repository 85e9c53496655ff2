// Package listview provides list item delegates for the view layer.
package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// PostItem interface for items that can be rendered by PostDelegate.
type PostItem interface {
	list.Item
	Title() string
	Description() string
	PostID() string
}

// PostDelegate renders posts as a title line and a byline.
type PostDelegate struct {
	Styles       list.DefaultItemStyles
	IsBookmarked func(postID string) bool
}

// NewPostDelegate creates a new PostDelegate. isBookmarked is consulted on
// every render and may be nil.
func NewPostDelegate(isBookmarked func(postID string) bool) *PostDelegate {
	return &PostDelegate{
		Styles:       withItemPadding(list.NewDefaultItemStyles()),
		IsBookmarked: isBookmarked,
	}
}

// Height returns the height of the item.
func (d *PostDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *PostDelegate) Spacing() int {
	return 1
}

// Update handles messages for the delegate.
func (d *PostDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *PostDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(PostItem)
	if !ok {
		return
	}

	title := i.Title()
	if d.IsBookmarked != nil && d.IsBookmarked(i.PostID()) {
		title = fmt.Sprintf("[B] %s", title)
	}

	titleStyle := itemStyle(d.Styles, m, index)
	descStyle := descStyle(d.Styles, m, index)
	title = truncateItemText(m, titleStyle, title)
	desc := truncateItemText(m, descStyle, i.Description())

	renderItemText(w, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	renderItemText(w, descStyle, desc)
}
