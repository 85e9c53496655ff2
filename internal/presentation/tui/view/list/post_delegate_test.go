package listview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
)

type mockPostItem struct {
	id    string
	title string
	desc  string
}

func (m mockPostItem) Title() string       { return m.title }
func (m mockPostItem) Description() string { return m.desc }
func (m mockPostItem) FilterValue() string { return m.title }
func (m mockPostItem) PostID() string      { return m.id }

func TestNewPostDelegate(t *testing.T) {
	d := NewPostDelegate(nil)
	if d == nil {
		t.Fatal("NewPostDelegate returned nil")
	}
	if d.Height() != 2 {
		t.Errorf("Expected Height 2, got %d", d.Height())
	}
	if d.Spacing() != 1 {
		t.Errorf("Expected Spacing 1, got %d", d.Spacing())
	}
	if cmd := d.Update(nil, nil); cmd != nil {
		t.Error("Update should return nil")
	}
}

func TestPostDelegate_Render(t *testing.T) {
	bookmarked := map[string]bool{"b": true}
	d := NewPostDelegate(func(id string) bool { return bookmarked[id] })

	tests := []struct {
		name        string
		item        list.Item
		mdlIndex    int
		contains    []string
		notContains string
	}{
		{
			name:        "Plain Item",
			item:        mockPostItem{id: "a", title: "A post", desc: "Ann - July 09"},
			mdlIndex:    1,
			contains:    []string{"A post", "Ann - July 09"},
			notContains: "[B]",
		},
		{
			name:     "Bookmarked Item",
			item:     mockPostItem{id: "b", title: "Saved post"},
			mdlIndex: 0,
			contains: []string{"[B] Saved post"},
		},
		{
			name:     "Invalid Item",
			item:     nil,
			mdlIndex: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := list.New([]list.Item{}, d, 60, 10)
			l.Select(tc.mdlIndex)

			d.Render(buf, l, 0, tc.item)

			if len(tc.contains) == 0 {
				if buf.Len() > 0 {
					t.Errorf("Expected empty output, got %q", buf.String())
				}
				return
			}
			for _, want := range tc.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Expected output to contain %q, got %q", want, buf.String())
				}
			}
			if tc.notContains != "" && strings.Contains(buf.String(), tc.notContains) {
				t.Errorf("Expected output not to contain %q, got %q", tc.notContains, buf.String())
			}
		})
	}
}

func TestPostDelegate_BookmarkReadAtRenderTime(t *testing.T) {
	saved := false
	d := NewPostDelegate(func(string) bool { return saved })
	l := list.New([]list.Item{}, d, 60, 10)
	item := mockPostItem{id: "a", title: "Post"}

	buf := &bytes.Buffer{}
	d.Render(buf, l, 0, item)
	if strings.Contains(buf.String(), "[B]") {
		t.Fatalf("unexpected marker: %q", buf.String())
	}

	saved = true
	buf.Reset()
	d.Render(buf, l, 0, item)
	if !strings.Contains(buf.String(), "[B] Post") {
		t.Fatalf("expected marker after toggle: %q", buf.String())
	}
}
