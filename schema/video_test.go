package schema_test

import (
	"testing"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/schema"
)

func TestVideoDurationNormalized(t *testing.T) {
	rec := jsonld.Record{
		"name":     "Launch video",
		"duration": "5:30",
	}
	doc, err := schema.Generate(jsonld.TypeVideo, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["duration"] != "PT5M30S" {
		t.Fatalf("duration = %v", doc["duration"])
	}
}

func TestVideoInteractionCountZero(t *testing.T) {
	rec := jsonld.Record{
		"name":              "Launch video",
		"interaction_count": 0,
	}
	doc, err := schema.Generate(jsonld.TypeVideo, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stat, ok := doc["interactionStatistic"].(jsonld.Document)
	if !ok {
		t.Fatalf("zero interaction count dropped: %v", doc)
	}
	if stat["userInteractionCount"] != 0 {
		t.Fatalf("count = %v", stat["userInteractionCount"])
	}
	if stat["interactionType"] != "https://schema.org/WatchAction" {
		t.Fatalf("interactionType = %v", stat["interactionType"])
	}
}

func TestVideoBothURLsAllowed(t *testing.T) {
	rec := jsonld.Record{
		"name":        "Launch video",
		"content_url": "https://cdn.example.org/v.mp4",
		"embed_url":   "https://example.org/embed/v",
	}
	doc, err := schema.Generate(jsonld.TypeVideo, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["contentUrl"] != "https://cdn.example.org/v.mp4" || doc["embedUrl"] != "https://example.org/embed/v" {
		t.Fatalf("urls wrong: %v", doc)
	}
}

func TestVideoBadURLsOmitted(t *testing.T) {
	rec := jsonld.Record{
		"name":          "Launch video",
		"thumbnail_url": "javascript:alert(1)",
		"content_url":   "ftp://example.org/v.mp4",
	}
	doc, err := schema.Generate(jsonld.TypeVideo, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["thumbnailUrl"]; ok {
		t.Fatalf("bad thumbnail survived: %v", doc["thumbnailUrl"])
	}
	if _, ok := doc["contentUrl"]; ok {
		t.Fatalf("non-http url survived: %v", doc["contentUrl"])
	}
}
