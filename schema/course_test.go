package schema_test

import (
	"testing"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/schema"
)

func TestCourseFreeOffer(t *testing.T) {
	rec := jsonld.Record{
		"name":  "Canvassing 101",
		"price": 0,
	}
	doc, err := schema.Generate(jsonld.TypeCourse, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offer, ok := doc["offers"].(jsonld.Document)
	if !ok {
		t.Fatalf("no offer for free course: %v", doc)
	}
	if offer["price"] != 0 || offer["priceCurrency"] != "USD" {
		t.Fatalf("offer wrong: %v", offer)
	}
	if offer["availability"] != "https://schema.org/InStock" {
		t.Fatalf("availability = %v", offer["availability"])
	}
}

func TestCourseInstanceDefaultsMode(t *testing.T) {
	rec := jsonld.Record{
		"name":                "Canvassing 101",
		"availability_starts": "2026-04-01",
		"availability_ends":   "2026-06-30",
	}
	doc, err := schema.Generate(jsonld.TypeCourse, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	instance := doc["hasCourseInstance"].(jsonld.Document)
	if instance["courseMode"] != "Online" {
		t.Fatalf("courseMode = %v", instance["courseMode"])
	}
	if instance["startDate"] != "2026-04-01" || instance["endDate"] != "2026-06-30" {
		t.Fatalf("instance dates wrong: %v", instance)
	}

	// No start date, no instance.
	doc, err = schema.Generate(jsonld.TypeCourse, jsonld.Record{"name": "Canvassing 101"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["hasCourseInstance"]; ok {
		t.Fatalf("instance emitted without start date: %v", doc["hasCourseInstance"])
	}
}

func TestCourseInstructor(t *testing.T) {
	rec := jsonld.Record{
		"name":                   "Canvassing 101",
		"instructor_name":        "Ada",
		"instructor_url":         "https://example.org/ada",
		"instructor_description": "Veteran organizer.",
	}
	doc, err := schema.Generate(jsonld.TypeCourse, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	instructor := doc["instructor"].(jsonld.Document)
	if instructor["@type"] != "Person" || instructor["name"] != "Ada" {
		t.Fatalf("instructor wrong: %v", instructor)
	}
	if instructor["description"] != "Veteran organizer." {
		t.Fatalf("description missing: %v", instructor)
	}
}
