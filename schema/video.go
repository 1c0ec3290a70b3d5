package schema

import (
	"time"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/codec"
	"github.com/seoforge/jsonld/internal/sanitize"
)

func generateVideo(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("VideoObject")

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if u := sanitize.URL(rec.String("thumbnail_url")); u != "" {
		doc["thumbnailUrl"] = u
	}
	if rec.Has("upload_date") {
		doc["uploadDate"] = sanitize.Text(rec.String("upload_date"))
	} else if pc != nil && !pc.PublishedAt.IsZero() {
		doc["uploadDate"] = pc.PublishedAt.Format(time.RFC3339)
	}
	if u := sanitize.URL(rec.String("content_url")); u != "" {
		doc["contentUrl"] = u
	}
	if u := sanitize.URL(rec.String("embed_url")); u != "" {
		doc["embedUrl"] = u
	}
	if rec.Has("duration") {
		doc["duration"] = codec.Duration(rec.String("duration"))
	}
	if rec.Has("transcript") {
		doc["transcript"] = sanitize.HTML(rec.String("transcript"))
	}
	if publisher := videoPublisher(rec); publisher != nil {
		doc["publisher"] = publisher
	}
	if author := personRef(rec, "author_name", "author_url"); author != nil {
		doc["author"] = author
	}
	if rec.Has("video_quality") {
		doc["videoQuality"] = sanitize.Text(rec.String("video_quality"))
	}
	if rec.Has("interaction_count") {
		doc["interactionStatistic"] = jsonld.Document{
			"@type":                "InteractionCounter",
			"interactionType":      "https://schema.org/WatchAction",
			"userInteractionCount": rec.Int("interaction_count"),
		}
	}
	if p := permalink(pc); p != "" {
		doc["mainEntityOfPage"] = jsonld.Document{
			"@type": "WebPage",
			"@id":   p,
		}
	}
	return doc
}

func videoPublisher(rec jsonld.Record) jsonld.Document {
	publisher := organizationRef(rec, "publisher_name", "publisher_url")
	if publisher == nil {
		return nil
	}
	if u := sanitize.URL(rec.String("publisher_logo")); u != "" {
		publisher["logo"] = jsonld.Document{
			"@type": "ImageObject",
			"url":   u,
		}
	}
	return publisher
}
