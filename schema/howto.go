package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// generateHowTo builds a HowTo document. Steps lacking both a name and text
// are dropped, and the surviving steps are renumbered so positions stay
// contiguous from 1 regardless of where the gaps were in the input.
func generateHowTo(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("HowTo")

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if u := sanitize.URL(rec.String("image")); u != "" {
		doc["image"] = u
	}
	if rec.Has("total_time") {
		doc["totalTime"] = sanitize.Text(rec.String("total_time"))
	}
	if rec.Has("estimated_cost") {
		currency := sanitize.Text(rec.String("cost_currency"))
		if currency == "" {
			currency = "USD"
		}
		doc["estimatedCost"] = jsonld.Document{
			"@type":    "MonetaryAmount",
			"currency": currency,
			"value":    rec.Value("estimated_cost"),
		}
	}
	if supplies := howToItems(rec.Strings("supply"), "HowToSupply"); len(supplies) > 0 {
		doc["supply"] = supplies
	}
	if tools := howToItems(rec.Strings("tool"), "HowToTool"); len(tools) > 0 {
		doc["tool"] = tools
	}

	doc["step"] = howToSteps(rec.List("steps"))

	if rec.Has("yield") {
		doc["yield"] = sanitize.Text(rec.String("yield"))
	}
	return doc
}

func howToItems(names []string, atType string) []any {
	items := make([]any, 0, len(names))
	for _, n := range names {
		n = sanitize.Text(n)
		if n == "" {
			continue
		}
		items = append(items, jsonld.Document{"@type": atType, "name": n})
	}
	return items
}

func howToSteps(steps []jsonld.Record) []any {
	out := make([]any, 0, len(steps))
	for _, s := range steps {
		name := sanitize.Text(s.String("name"))
		text := sanitize.Textarea(s.String("text"))
		if name == "" && text == "" {
			continue
		}
		step := jsonld.Document{
			"@type":    "HowToStep",
			"position": len(out) + 1,
		}
		if name != "" {
			step["name"] = name
		}
		if text != "" {
			step["text"] = text
		}
		if u := sanitize.URL(s.String("image")); u != "" {
			step["image"] = u
		}
		if u := sanitize.URL(s.String("url")); u != "" {
			step["url"] = u
		}
		out = append(out, step)
	}
	return out
}
