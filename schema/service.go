package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// generateService builds a Service document. Offers appear when either a
// flat price or a price range is present; the two are never merged. A range
// nests under priceSpecification while a flat price sits on the offer
// itself. A price of 0 is a real price and produces an offer.
func generateService(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("Service")

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if rec.Has("service_type") {
		doc["serviceType"] = sanitize.Text(rec.String("service_type"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if u := sanitize.URL(rec.String("image")); u != "" {
		doc["image"] = u
	}
	if u := sanitize.URL(rec.String("url")); u != "" {
		doc["url"] = u
	} else if p := permalink(pc); p != "" {
		doc["url"] = p
	}

	if provider := serviceProvider(rec); provider != nil {
		doc["provider"] = provider
	}
	if area := rec.StringOrList("area_served"); !area.IsZero() {
		doc["areaServed"] = area.Any()
	}
	if offer := serviceOffer(rec); offer != nil {
		doc["offers"] = offer
	}
	if rec.Has("service_output") {
		doc["serviceOutput"] = sanitize.Text(rec.String("service_output"))
	}
	if rec.Has("hours_available") {
		days := sanitize.Text(rec.String("days_of_week"))
		if days == "" {
			days = "Monday-Friday"
		}
		doc["hoursAvailable"] = jsonld.Document{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": days,
		}
	}
	if rec.Has("category") {
		doc["category"] = sanitize.Text(rec.String("category"))
	}
	if rec.Has("brand") {
		doc["brand"] = jsonld.Document{
			"@type": "Brand",
			"name":  sanitize.Text(rec.String("brand")),
		}
	}
	return doc
}

func serviceProvider(rec jsonld.Record) jsonld.Document {
	provider := organizationRef(rec, "provider_name", "provider_url")
	if provider == nil {
		return nil
	}
	if rec.Has("provider_telephone") {
		provider["telephone"] = sanitize.Text(rec.String("provider_telephone"))
	}
	return provider
}

func serviceOffer(rec jsonld.Record) jsonld.Document {
	hasPrice := rec.Has("price")
	hasRange := rec.Has("price_range")
	if !hasPrice && !hasRange {
		return nil
	}

	currency := sanitize.Text(rec.String("price_currency"))
	if currency == "" {
		currency = "USD"
	}

	offer := jsonld.Document{"@type": "Offer"}
	if hasPrice {
		offer["price"] = rec.Value("price")
		offer["priceCurrency"] = currency
	}
	if hasRange {
		offer["priceSpecification"] = jsonld.Document{
			"@type":         "PriceSpecification",
			"price":         sanitize.Text(rec.String("price_range")),
			"priceCurrency": currency,
		}
	}
	if rec.Has("availability") {
		offer["availability"] = sanitize.Text(rec.String("availability"))
	}
	return offer
}
