package schema_test

import (
	"testing"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/schema"
)

func TestHowToStepsRenumbered(t *testing.T) {
	rec := jsonld.Record{
		"name": "Change a tire",
		"steps": []any{
			map[string]any{"name": "Loosen the nuts"},
			map[string]any{"text": "Jack up the car"},
			map[string]any{"name": "", "text": "  "},
			map[string]any{"name": "Swap the wheel", "text": "Remove old, fit new."},
		},
	}
	doc, err := schema.Generate(jsonld.TypeHowTo, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	steps, ok := doc["step"].([]any)
	if !ok {
		t.Fatalf("step missing: %v", doc)
	}
	if len(steps) != 3 {
		t.Fatalf("want 3 steps, got %d", len(steps))
	}
	for i, raw := range steps {
		step := raw.(jsonld.Document)
		if step["position"] != i+1 {
			t.Fatalf("step %d position = %v, want %d", i, step["position"], i+1)
		}
	}
	last := steps[2].(jsonld.Document)
	if last["name"] != "Swap the wheel" {
		t.Fatalf("wrong step survived at the end: %v", last)
	}
}

func TestHowToEmptySteps(t *testing.T) {
	doc, err := schema.Generate(jsonld.TypeHowTo, jsonld.Record{"name": "Nothing to do"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	steps, ok := doc["step"].([]any)
	if !ok || len(steps) != 0 {
		t.Fatalf("want empty step list, got %v", doc["step"])
	}
}

func TestHowToSuppliesToolsAndCost(t *testing.T) {
	rec := jsonld.Record{
		"name":           "Build a birdhouse",
		"supply":         []any{"Plywood", "", "Nails"},
		"tool":           []any{"Hammer"},
		"estimated_cost": 25,
		"yield":          "One birdhouse",
	}
	doc, err := schema.Generate(jsonld.TypeHowTo, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	supplies := doc["supply"].([]any)
	if len(supplies) != 2 {
		t.Fatalf("want 2 supplies, got %v", supplies)
	}
	if supplies[0].(jsonld.Document)["@type"] != "HowToSupply" {
		t.Fatalf("supply type wrong: %v", supplies[0])
	}
	cost := doc["estimatedCost"].(jsonld.Document)
	if cost["currency"] != "USD" || cost["value"] != 25 {
		t.Fatalf("cost wrong: %v", cost)
	}
	if doc["yield"] != "One birdhouse" {
		t.Fatalf("yield missing: %v", doc)
	}
}
