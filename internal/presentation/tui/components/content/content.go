// Package content renders the body of a post.
package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jetnews/internal/domain/article"
	"github.com/tesso57/jetnews/internal/presentation/tui/metrics"
	"github.com/tesso57/jetnews/internal/presentation/tui/theme"
)

// BulletPrefix is prepended to bullet paragraphs.
const BulletPrefix = "• "

// Props defines the properties for the content component.
type Props struct {
	Post  article.Post
	Width int
	Theme theme.Theme
}

// Render renders the post header followed by its paragraphs.
func Render(p Props) string {
	width := p.Width - 2*metrics.ContentPadding
	if width < 1 {
		width = 1
	}

	blocks := []string{header(p.Post, width, p.Theme)}
	for _, para := range p.Post.Paragraphs {
		if block := paragraph(para, width, p.Theme); block != "" {
			blocks = append(blocks, block)
		}
	}

	return lipgloss.NewStyle().
		Padding(0, metrics.ContentPadding).
		Render(strings.Join(blocks, "\n\n"))
}

// Metadata formats the author line.
func Metadata(post article.Post) string {
	parts := make([]string, 0, 3)
	if post.Metadata.Author.Name != "" {
		parts = append(parts, post.Metadata.Author.Name)
	}
	if post.Metadata.Date != "" {
		parts = append(parts, post.Metadata.Date)
	}
	if post.Metadata.ReadTimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min read", post.Metadata.ReadTimeMinutes))
	}
	return strings.Join(parts, " · ")
}

func header(post article.Post, width int, th theme.Theme) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(th.OnSurface).Width(width).Render(post.Title),
	}
	if post.Subtitle != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(th.Muted).Width(width).Render(post.Subtitle))
	}
	if meta := Metadata(post); meta != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(th.Muted).Italic(true).Render(meta))
	}
	return strings.Join(lines, "\n")
}

func paragraph(para article.Paragraph, width int, th theme.Theme) string {
	text := spans(para.Spans(), th)
	if text == "" {
		return ""
	}

	base := lipgloss.NewStyle().Foreground(th.OnSurface)
	switch para.Type {
	case article.TitleParagraph:
		return base.Bold(true).Foreground(th.Primary).Width(width).Render(text)
	case article.CaptionParagraph:
		return base.Foreground(th.Muted).Italic(true).Width(width).Render(text)
	case article.HeaderParagraph:
		return base.Bold(true).Underline(true).Width(width).Render(text)
	case article.SubheadParagraph:
		return base.Bold(true).Width(width).Render(text)
	case article.CodeBlockParagraph:
		return base.Background(th.CodeBg).Padding(0, 1).Width(width).Render(para.Text)
	case article.QuoteParagraph:
		return base.Italic(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(th.Accent).
			PaddingLeft(1).
			Width(width - 1).
			Render(text)
	case article.BulletParagraph:
		return base.Width(width).Render(BulletPrefix + text)
	default:
		return base.Width(width).Render(text)
	}
}

func spans(ss []article.Span, th theme.Theme) string {
	var b strings.Builder
	for _, s := range ss {
		style := lipgloss.NewStyle()
		for _, m := range s.Styles {
			switch m {
			case article.LinkMarkup:
				style = style.Foreground(th.Link).Underline(true)
			case article.CodeMarkup:
				style = style.Background(th.CodeBg)
			case article.ItalicMarkup:
				style = style.Italic(true)
			case article.BoldMarkup:
				style = style.Bold(true)
			}
		}
		if len(s.Styles) == 0 {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(style.Render(s.Text))
	}
	return b.String()
}
