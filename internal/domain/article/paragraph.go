package article

import "sort"

// ParagraphType describes how a paragraph is rendered.
type ParagraphType int

const (
	TitleParagraph ParagraphType = iota
	CaptionParagraph
	HeaderParagraph
	SubheadParagraph
	TextParagraph
	CodeBlockParagraph
	QuoteParagraph
	BulletParagraph
)

// MarkupType describes an inline style.
type MarkupType int

const (
	LinkMarkup MarkupType = iota
	CodeMarkup
	ItalicMarkup
	BoldMarkup
)

// Markup styles a rune range of a paragraph.
type Markup struct {
	Type  MarkupType
	Start int
	End   int
	Href  string
}

// Paragraph is one block of post content.
type Paragraph struct {
	Type    ParagraphType
	Text    string
	Markups []Markup
}

// Span is a run of text with a single set of styles applied.
type Span struct {
	Text   string
	Styles []MarkupType
	Href   string
}

// Spans splits the paragraph text at markup boundaries.
// Markup offsets are clamped to the text; empty ranges are skipped.
func (p Paragraph) Spans() []Span {
	runes := []rune(p.Text)
	if len(runes) == 0 {
		return nil
	}

	type bound struct{ start, end int }
	ranges := make([]bound, len(p.Markups))
	cuts := map[int]struct{}{0: {}, len(runes): {}}
	for i, m := range p.Markups {
		start := clamp(m.Start, 0, len(runes))
		end := clamp(m.End, 0, len(runes))
		ranges[i] = bound{start, end}
		if start < end {
			cuts[start] = struct{}{}
			cuts[end] = struct{}{}
		}
	}

	points := make([]int, 0, len(cuts))
	for c := range cuts {
		points = append(points, c)
	}
	sort.Ints(points)

	spans := make([]Span, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		start, end := points[i], points[i+1]
		span := Span{Text: string(runes[start:end])}
		for j, m := range p.Markups {
			if ranges[j].start <= start && end <= ranges[j].end && ranges[j].start < ranges[j].end {
				span.Styles = append(span.Styles, m.Type)
				if m.Type == LinkMarkup {
					span.Href = m.Href
				}
			}
		}
		spans = append(spans, span)
	}
	return spans
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
