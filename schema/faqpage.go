package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// generateFAQPage builds a FAQPage document. Pairs missing either the
// question or the answer are dropped from mainEntity silently; surviving
// pairs keep their input order. The answer is a rich-text field.
func generateFAQPage(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("FAQPage")
	entities := []any{}

	for _, qa := range rec.List("questions") {
		if !qa.Has("question") || !qa.Has("answer") {
			continue
		}
		entities = append(entities, jsonld.Document{
			"@type": "Question",
			"name":  sanitize.Text(qa.String("question")),
			"acceptedAnswer": jsonld.Document{
				"@type": "Answer",
				"text":  sanitize.HTML(qa.String("answer")),
			},
		})
	}

	doc["mainEntity"] = entities
	return doc
}
