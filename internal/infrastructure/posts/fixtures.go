// Package posts provides post repositories backed by fixtures and feeds.
package posts

import (
	"fmt"

	"github.com/tesso57/jetnews/internal/domain/article"
)

var androidDevelopers = &article.Publication{
	Name:    "Android Developers",
	LogoURL: "https://cdn-images-1.medium.com/max/258/1*u7oZc2_5mrkcFaxkXEyfYA@2x.png",
}

var (
	manuel  = article.PostAuthor{Name: "Manuel Vivo", URL: "https://medium.com/@manuelvicnt"}
	florina = article.PostAuthor{Name: "Florina Muntenescu", URL: "https://medium.com/@florina.muntenescu"}
	jose    = article.PostAuthor{Name: "Jose Alcérreca", URL: "https://medium.com/@JoseAlcerreca"}
)

// Post1 through Post5 are the sample posts served by the fake repository.
var (
	Post1 = article.Post{
		ID:          "dc523f0ed25c",
		Title:       "A little thing about Android module paths",
		Subtitle:    "How to configure your module paths, instead of using Gradle's default.",
		URL:         "https://medium.com/androiddevelopers/gradle-path-configuration-dc523f0ed25c",
		Publication: androidDevelopers,
		Metadata:    article.Metadata{Author: florina, Date: "August 02", ReadTimeMinutes: 1},
		Paragraphs: []article.Paragraph{
			{Type: article.TextParagraph, Text: "Modules let you split a codebase into pieces that build on their own. Each module needs a path, and the default one is rarely what you want."},
			{Type: article.HeaderParagraph, Text: "Configure the path"},
			{
				Type:    article.TextParagraph,
				Text:    "Set projectDir in settings.gradle to point the module at any directory.",
				Markups: []article.Markup{{Type: article.CodeMarkup, Start: 4, End: 14}, {Type: article.CodeMarkup, Start: 18, End: 33}},
			},
			{Type: article.CodeBlockParagraph, Text: "include(':feature')\nproject(':feature').projectDir = file('features/feature')"},
		},
		ImageID: "post_1",
	}

	Post2 = article.Post{
		ID:          "7446d8dfd7dc",
		Title:       "Dagger in Kotlin: Gotchas and Optimizations",
		Subtitle:    "Use Dagger in Kotlin! This article includes best practices to optimize your build time and gotchas you might encounter.",
		URL:         "https://medium.com/androiddevelopers/dagger-in-kotlin-gotchas-and-optimizations-7446d8dfd7dc",
		Publication: androidDevelopers,
		Metadata:    article.Metadata{Author: manuel, Date: "July 30", ReadTimeMinutes: 3},
		Paragraphs: []article.Paragraph{
			{Type: article.TextParagraph, Text: "Dagger is a popular dependency injection framework. Using it from Kotlin has a few sharp edges."},
			{Type: article.SubheadParagraph, Text: "Lateinit field injection"},
			{
				Type:    article.TextParagraph,
				Text:    "Fields injected by Dagger are annotated with @Inject and declared lateinit var.",
				Markups: []article.Markup{{Type: article.CodeMarkup, Start: 45, End: 52}, {Type: article.BoldMarkup, Start: 66, End: 78}},
			},
			{Type: article.BulletParagraph, Text: "Prefer constructor injection."},
			{Type: article.BulletParagraph, Text: "Use @JvmStatic for @Provides methods in companion objects."},
			{Type: article.QuoteParagraph, Text: "Optimizations are about build time as much as runtime."},
		},
		ImageID: "post_2",
	}

	Post3 = article.Post{
		ID:          "ac552dcc1741",
		Title:       "From Java Programming Language to Kotlin — the idiomatic way",
		Subtitle:    "Learn how to get started converting Java Programming Language code to Kotlin, making it more idiomatic and avoid common pitfalls, by…",
		URL:         "https://medium.com/androiddevelopers/from-java-programming-language-to-kotlin-the-idiomatic-way-ac552dcc1741",
		Publication: androidDevelopers,
		Metadata:    article.Metadata{Author: florina, Date: "July 09", ReadTimeMinutes: 1},
		Paragraphs: []article.Paragraph{
			{Type: article.TextParagraph, Text: "Kotlin is one of the most loved languages of the year. Converting a codebase is easier when you go file by file."},
			{Type: article.HeaderParagraph, Text: "Nullability"},
			{
				Type: article.TextParagraph,
				Text: "The converter guesses nullability, so review every ? and !! it adds. Read the codelab for details.",
				Markups: []article.Markup{
					{Type: article.CodeMarkup, Start: 51, End: 52},
					{Type: article.CodeMarkup, Start: 57, End: 59},
					{Type: article.LinkMarkup, Start: 78, End: 85, Href: "https://codelabs.developers.google.com/codelabs/java-to-kotlin"},
				},
			},
			{Type: article.CaptionParagraph, Text: "Convert one class at a time."},
			{Type: article.HeaderParagraph, Text: "Properties"},
			{
				Type:    article.TextParagraph,
				Text:    "Getters and setters become properties, and data classes replace boilerplate equals and hashCode.",
				Markups: []article.Markup{{Type: article.ItalicMarkup, Start: 43, End: 55}},
			},
			{Type: article.CodeBlockParagraph, Text: "data class User(val name: String, val lastName: String?)"},
		},
		ImageID: "post_3",
	}

	Post4 = article.Post{
		ID:          "84eb677660d9",
		Title:       "Locale changes and the AndroidViewModel antipattern",
		Subtitle:    "TL;DR: Expose resource IDs from ViewModels to avoid showing obsolete data.",
		URL:         "https://medium.com/androiddevelopers/locale-changes-and-the-androidviewmodel-antipattern-84eb677660d9",
		Publication: androidDevelopers,
		Metadata:    article.Metadata{Author: jose, Date: "April 02", ReadTimeMinutes: 1},
		Paragraphs: []article.Paragraph{
			{Type: article.TextParagraph, Text: "Resolving strings in a ViewModel means they go stale when the locale changes."},
			{Type: article.TextParagraph, Text: "Expose resource IDs and resolve them in the view instead."},
		},
		ImageID: "post_4",
	}

	Post5 = article.Post{
		ID:       "55db18283aca",
		Title:    "Collections and sequences in Kotlin",
		Subtitle: "Working with collections is a common task and the Kotlin Standard Library offers many great utility functions.",
		URL:      "https://medium.com/androiddevelopers/collections-and-sequences-in-kotlin-55db18283aca",
		Metadata: article.Metadata{Author: florina, Date: "July 24", ReadTimeMinutes: 4},
		Paragraphs: []article.Paragraph{
			{Type: article.TextParagraph, Text: "Collections are evaluated eagerly. Sequences are evaluated lazily, one element at a time."},
			{Type: article.BulletParagraph, Text: "Use sequences for long chains of operations."},
			{Type: article.BulletParagraph, Text: "Use collections for small data sets."},
		},
		ImageID: "post_5",
	}
)

// Fixtures returns the sample posts in display order.
func Fixtures() []article.Post {
	return []article.Post{Post1, Post2, Post3, Post4, Post5}
}

// Fixture returns the sample post with the given ID.
func Fixture(id string) (article.Post, bool) {
	for _, p := range Fixtures() {
		if p.ID == id {
			return p, true
		}
	}
	return article.Post{}, false
}

// MustFixture returns the sample post with the given ID and panics if it does not exist.
// It is meant for previews and tests only.
func MustFixture(id string) article.Post {
	p, ok := Fixture(id)
	if !ok {
		panic(fmt.Sprintf("posts: no fixture with id %q", id))
	}
	return p
}
