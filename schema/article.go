package schema

import (
	"time"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// generateArticle builds an Article document. The @type is the chosen
// subtype itself (Article, BlogPosting, NewsArticle, ScholarlyArticle,
// TechArticle) via "article_type"; dates fall back to the page context
// timestamps when the record carries none.
func generateArticle(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	return articleWithDefaultType(rec, pc, "Article")
}

// generateScholarly is the article generator with the ScholarlyArticle
// subtype as default; the wizard exposes research publications as their own
// content kind.
func generateScholarly(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	return articleWithDefaultType(rec, pc, "ScholarlyArticle")
}

func articleWithDefaultType(rec jsonld.Record, pc *jsonld.PageContext, defaultType string) jsonld.Document {
	articleType := rec.String("article_type")
	if articleType == "" {
		articleType = defaultType
	}
	doc := newDocument(articleType)

	if rec.Has("headline") {
		doc["headline"] = sanitize.Text(rec.String("headline"))
	}
	if author := personRef(rec, "author_name", "author_url"); author != nil {
		doc["author"] = author
	}

	if rec.Has("datePublished") {
		doc["datePublished"] = sanitize.Text(rec.String("datePublished"))
	} else if pc != nil && !pc.PublishedAt.IsZero() {
		doc["datePublished"] = pc.PublishedAt.Format(time.RFC3339)
	}
	if rec.Has("dateModified") {
		doc["dateModified"] = sanitize.Text(rec.String("dateModified"))
	} else if pc != nil && !pc.ModifiedAt.IsZero() {
		doc["dateModified"] = pc.ModifiedAt.Format(time.RFC3339)
	}

	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if u := sanitize.URL(rec.String("image")); u != "" {
		doc["image"] = u
	}
	if publisher := articlePublisher(rec); publisher != nil {
		doc["publisher"] = publisher
	}
	if rec.Has("articleBody") {
		doc["articleBody"] = sanitize.HTML(rec.String("articleBody"))
	}
	if rec.Has("wordCount") {
		doc["wordCount"] = rec.Int("wordCount")
	}
	if p := permalink(pc); p != "" {
		doc["mainEntityOfPage"] = jsonld.Document{
			"@type": "WebPage",
			"@id":   p,
		}
	}
	return doc
}

// articlePublisher requires a publisher name before logo and url attach.
func articlePublisher(rec jsonld.Record) jsonld.Document {
	if !rec.Has("publisher_name") {
		return nil
	}
	publisher := jsonld.Document{
		"@type": "Organization",
		"name":  sanitize.Text(rec.String("publisher_name")),
	}
	if u := sanitize.URL(rec.String("publisher_logo")); u != "" {
		publisher["logo"] = jsonld.Document{
			"@type": "ImageObject",
			"url":   u,
		}
	}
	if u := sanitize.URL(rec.String("publisher_url")); u != "" {
		publisher["url"] = u
	}
	return publisher
}
