package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jetnews/internal/domain/navigation"
	"github.com/tesso57/jetnews/internal/presentation/tui/metrics"
	"github.com/tesso57/jetnews/internal/presentation/tui/state"
)

type layoutMetrics struct {
	width          int
	listHeight     int
	viewportHeight int
}

// UpdateSizes resizes the post list and the article viewport to the terminal.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.PostList.SetSize(layout.width, layout.listHeight)
	s.Viewport.Width = layout.width
	s.Viewport.Height = layout.viewportHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	available := clampMin(s.Height-footerHeight(s), 1)

	listHeight := clampMin(available-metrics.HomeTitleLines, 1)
	listHeight = reservePaginationSpace(s.PostList, listHeight)

	return layoutMetrics{
		width:          s.Width,
		listHeight:     listHeight,
		viewportHeight: clampMin(available-metrics.TopBarLines-metrics.BottomBarLines, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	helpText := state.FooterHelpText(s.Help, s.Keys, s.Screen())
	return lipgloss.Height(state.FooterText(s.StatusMessage, helpText))
}

// BodyHeight is the height of the body slot for the current screen.
func BodyHeight(s *state.ModelState) int {
	if s.Screen() == navigation.Article {
		return s.Viewport.Height
	}
	return s.PostList.Height() + metrics.HomeTitleLines
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
