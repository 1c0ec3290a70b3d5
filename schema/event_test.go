package schema_test

import (
	"testing"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/schema"
)

func TestEventVirtualLocation(t *testing.T) {
	rec := jsonld.Record{
		"name":          "Annual Meeting",
		"start_date":    "2026-03-15",
		"start_time":    "19:30",
		"location_type": "virtual",
		"virtual_url":   "https://example.org/live",
	}
	doc, err := schema.Generate(jsonld.TypeEvent, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["eventAttendanceMode"] != "https://schema.org/OnlineEventAttendanceMode" {
		t.Fatalf("attendance mode = %v", doc["eventAttendanceMode"])
	}
	loc := doc["location"].(jsonld.Document)
	if loc["@type"] != "VirtualLocation" || loc["url"] != "https://example.org/live" {
		t.Fatalf("location wrong: %v", loc)
	}
	if doc["startDate"] != "2026-03-15T19:30:00Z" {
		t.Fatalf("startDate = %v", doc["startDate"])
	}
}

func TestEventVirtualWithBadURL(t *testing.T) {
	rec := jsonld.Record{
		"name":          "Webinar",
		"location_type": "virtual",
		"virtual_url":   "not a url",
	}
	doc, err := schema.Generate(jsonld.TypeEvent, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["eventAttendanceMode"] != "https://schema.org/OnlineEventAttendanceMode" {
		t.Fatalf("attendance mode = %v", doc["eventAttendanceMode"])
	}
	if _, ok := doc["location"]; ok {
		t.Fatalf("location emitted for invalid virtual url: %v", doc["location"])
	}
}

func TestEventPhysicalLocation(t *testing.T) {
	rec := jsonld.Record{
		"name":             "Town Hall",
		"location_type":    "physical",
		"location_name":    "Community Center",
		"street_address":   "1 Main St",
		"address_locality": "Springfield",
	}
	doc, err := schema.Generate(jsonld.TypeEvent, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["eventAttendanceMode"] != "https://schema.org/OfflineEventAttendanceMode" {
		t.Fatalf("attendance mode = %v", doc["eventAttendanceMode"])
	}
	loc := doc["location"].(jsonld.Document)
	if loc["@type"] != "Place" || loc["name"] != "Community Center" {
		t.Fatalf("place wrong: %v", loc)
	}
	addr := loc["address"].(jsonld.Document)
	if addr["streetAddress"] != "1 Main St" {
		t.Fatalf("address wrong: %v", addr)
	}
}

func TestEventNoLocationType(t *testing.T) {
	doc, err := schema.Generate(jsonld.TypeEvent, jsonld.Record{"name": "TBD"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["location"]; ok {
		t.Fatalf("location emitted: %v", doc["location"])
	}
	if _, ok := doc["eventAttendanceMode"]; ok {
		t.Fatalf("attendance mode emitted: %v", doc["eventAttendanceMode"])
	}
	if doc["eventStatus"] != "https://schema.org/EventScheduled" {
		t.Fatalf("eventStatus = %v", doc["eventStatus"])
	}
}

func TestEventOfferRequiresURL(t *testing.T) {
	rec := jsonld.Record{
		"name":         "Gala",
		"offers_price": 50,
	}
	doc, err := schema.Generate(jsonld.TypeEvent, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["offers"]; ok {
		t.Fatalf("offer emitted without url: %v", doc["offers"])
	}

	rec["offers_url"] = "https://example.org/tickets"
	doc, err = schema.Generate(jsonld.TypeEvent, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offer := doc["offers"].(jsonld.Document)
	if offer["price"] != 50 || offer["priceCurrency"] != "USD" {
		t.Fatalf("offer wrong: %v", offer)
	}
	if offer["availability"] != "https://schema.org/InStock" {
		t.Fatalf("availability = %v", offer["availability"])
	}
}
