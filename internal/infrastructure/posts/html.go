package posts

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/tesso57/jetnews/internal/domain/article"
)

const blockSelector = "p,h1,h2,h3,h4,h5,h6,pre,blockquote,li,figcaption,div,section,ul,ol"

// ParagraphsFromHTML converts feed item HTML into post paragraphs.
// Plain text without markup becomes a single text paragraph.
func ParagraphsFromHTML(body string) []article.Paragraph {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return []article.Paragraph{{Type: article.TextParagraph, Text: collapseSpace(body)}}
	}
	var out []article.Paragraph
	collectBlocks(doc.Find("body"), &out)
	return out
}

func collectBlocks(sel *goquery.Selection, out *[]article.Paragraph) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch name {
		case "#text":
			if text := collapseSpace(c.Text()); text != "" {
				*out = append(*out, article.Paragraph{Type: article.TextParagraph, Text: text})
			}
		case "#comment", "script", "style", "img", "iframe", "hr", "br":
		case "p":
			appendInline(out, article.TextParagraph, c)
		case "h1", "h2":
			appendInline(out, article.HeaderParagraph, c)
		case "h3", "h4", "h5", "h6":
			appendInline(out, article.SubheadParagraph, c)
		case "pre":
			if text := strings.TrimRight(c.Text(), "\n"); strings.TrimSpace(text) != "" {
				*out = append(*out, article.Paragraph{Type: article.CodeBlockParagraph, Text: text})
			}
		case "blockquote":
			appendInline(out, article.QuoteParagraph, c)
		case "li":
			appendInline(out, article.BulletParagraph, c)
		case "figcaption":
			appendInline(out, article.CaptionParagraph, c)
		default:
			if c.Find(blockSelector).Length() > 0 {
				collectBlocks(c, out)
				return
			}
			appendInline(out, article.TextParagraph, c)
		}
	})
}

func appendInline(out *[]article.Paragraph, typ article.ParagraphType, sel *goquery.Selection) {
	text, markups := inlineText(sel)
	if text == "" {
		return
	}
	*out = append(*out, article.Paragraph{Type: typ, Text: text, Markups: markups})
}

// inlineText flattens an element into text plus rune-offset markups.
func inlineText(sel *goquery.Selection) (string, []article.Markup) {
	var b strings.Builder
	var markups []article.Markup
	offset := 0

	write := func(s string) {
		if s == "" {
			return
		}
		if strings.HasSuffix(b.String(), " ") && strings.HasPrefix(s, " ") {
			s = s[1:]
		}
		b.WriteString(s)
		offset += utf8.RuneCountInString(s)
	}

	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			name := goquery.NodeName(c)
			switch name {
			case "#text":
				write(collapseInline(c.Text()))
				return
			case "br":
				write(" ")
				return
			case "#comment", "script", "style", "img":
				return
			}

			start := offset
			walk(c)
			typ, ok := markupFor(name)
			if !ok || offset <= start {
				return
			}
			m := article.Markup{Type: typ, Start: start, End: offset}
			if typ == article.LinkMarkup {
				m.Href, _ = c.Attr("href")
			}
			markups = append(markups, m)
		})
	}
	walk(sel)

	raw := b.String()
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	shift := utf8.RuneCountInString(raw) - utf8.RuneCountInString(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if shift > 0 {
		for i := range markups {
			markups[i].Start -= shift
			markups[i].End -= shift
		}
	}
	return trimmed, markups
}

func markupFor(tag string) (article.MarkupType, bool) {
	switch tag {
	case "a":
		return article.LinkMarkup, true
	case "code", "kbd", "samp":
		return article.CodeMarkup, true
	case "em", "i":
		return article.ItalicMarkup, true
	case "strong", "b":
		return article.BoldMarkup, true
	default:
		return 0, false
	}
}

// collapseInline collapses whitespace runs to one space, keeping edge spaces.
func collapseInline(s string) string {
	if s == "" {
		return ""
	}
	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		return " "
	}
	if unicode.IsSpace(rune(s[0])) {
		collapsed = " " + collapsed
	}
	if r, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(r) {
		collapsed += " "
	}
	return collapsed
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func plainText(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return collapseSpace(body)
	}
	return collapseSpace(doc.Text())
}
