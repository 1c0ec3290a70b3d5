package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/codec"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// generateEvent builds an Event document. Location is exclusive: a virtual
// event gets a VirtualLocation and OnlineEventAttendanceMode, anything else
// gets a Place and OfflineEventAttendanceMode, never both.
func generateEvent(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("Event")
	doc["eventStatus"] = "https://schema.org/EventScheduled"

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if rec.Has("start_date") {
		doc["startDate"] = codec.DateTime(rec.String("start_date"), rec.String("start_time"))
	}
	if rec.Has("end_date") {
		doc["endDate"] = codec.DateTime(rec.String("end_date"), rec.String("end_time"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if u := sanitize.URL(rec.String("image")); u != "" {
		doc["image"] = u
	}

	addEventLocation(doc, rec)

	if organizer := organizationRef(rec, "organizer_name", "organizer_url"); organizer != nil {
		doc["organizer"] = organizer
	}
	if offer := eventOffer(rec); offer != nil {
		doc["offers"] = offer
	}
	if performer := personRef(rec, "performer_name", ""); performer != nil {
		doc["performer"] = performer
	}
	return doc
}

func addEventLocation(doc jsonld.Document, rec jsonld.Record) {
	locationType := rec.String("location_type")
	if locationType == "" {
		return
	}

	if locationType == "virtual" {
		doc["eventAttendanceMode"] = "https://schema.org/OnlineEventAttendanceMode"
		if u := sanitize.URL(rec.String("virtual_url")); u != "" {
			doc["location"] = jsonld.Document{
				"@type": "VirtualLocation",
				"url":   u,
			}
		}
		return
	}

	doc["eventAttendanceMode"] = "https://schema.org/OfflineEventAttendanceMode"
	place := jsonld.Document{"@type": "Place"}
	if rec.Has("location_name") {
		place["name"] = sanitize.Text(rec.String("location_name"))
	}
	if addr := postalAddress(rec); addr != nil {
		place["address"] = addr
	}
	doc["location"] = place
}

func eventOffer(rec jsonld.Record) jsonld.Document {
	u := sanitize.URL(rec.String("offers_url"))
	if u == "" {
		return nil
	}
	offer := jsonld.Document{
		"@type":        "Offer",
		"url":          u,
		"availability": "https://schema.org/InStock",
	}
	if rec.Has("offers_price") {
		offer["price"] = rec.Value("offers_price")
		currency := sanitize.Text(rec.String("offers_currency"))
		if currency == "" {
			currency = "USD"
		}
		offer["priceCurrency"] = currency
	}
	if rec.Has("offers_valid_from") {
		offer["validFrom"] = sanitize.Text(rec.String("offers_valid_from"))
	}
	return offer
}
