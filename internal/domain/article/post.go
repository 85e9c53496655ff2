// Package article defines core article models.
package article

// Publication is the outlet a post was published in.
type Publication struct {
	Name    string
	LogoURL string
}

// PostAuthor identifies the author of a post.
type PostAuthor struct {
	Name string
	URL  string
}

// Metadata holds display metadata for a post.
type Metadata struct {
	Author          PostAuthor
	Date            string
	ReadTimeMinutes int
}

// Post represents a single article.
type Post struct {
	ID          string
	Title       string
	Subtitle    string
	URL         string
	Publication *Publication
	Metadata    Metadata
	Paragraphs  []Paragraph
	ImageID     string
}

// PublishedInTitle returns the top bar title for a post.
// A post without a publication renders the literal "null".
func PublishedInTitle(p Post) string {
	name := "null"
	if p.Publication != nil {
		name = p.Publication.Name
	}
	return "Published in: " + name
}
