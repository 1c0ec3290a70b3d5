package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// Nested fragment builders shared across generators. Each returns nil when
// the record carries no data for the fragment so the caller can omit the
// property entirely.

// postalAddress builds a PostalAddress fragment. It returns nil unless at
// least a street address or a locality is present; region, postal code and
// country alone do not make an address.
func postalAddress(rec jsonld.Record) jsonld.Document {
	if !rec.Has("street_address") && !rec.Has("address_locality") {
		return nil
	}
	return addressFields(rec)
}

// addressFields fills a PostalAddress with whatever address fields exist,
// with no presence guard. LocalBusiness uses this directly: its address is
// structurally required and emitted even when empty.
func addressFields(rec jsonld.Record) jsonld.Document {
	addr := jsonld.Document{"@type": "PostalAddress"}
	if rec.Has("street_address") {
		addr["streetAddress"] = sanitize.Text(rec.String("street_address"))
	}
	if rec.Has("address_locality") {
		addr["addressLocality"] = sanitize.Text(rec.String("address_locality"))
	}
	if rec.Has("address_region") {
		addr["addressRegion"] = sanitize.Text(rec.String("address_region"))
	}
	if rec.Has("postal_code") {
		addr["postalCode"] = sanitize.Text(rec.String("postal_code"))
	}
	if rec.Has("address_country") {
		addr["addressCountry"] = sanitize.Text(rec.String("address_country"))
	}
	return addr
}

// organizationRef builds a minimal Organization fragment around a name field
// with an optional url field.
func organizationRef(rec jsonld.Record, nameKey, urlKey string) jsonld.Document {
	if !rec.Has(nameKey) {
		return nil
	}
	org := jsonld.Document{
		"@type": "Organization",
		"name":  sanitize.Text(rec.String(nameKey)),
	}
	if urlKey != "" {
		if u := sanitize.URL(rec.String(urlKey)); u != "" {
			org["url"] = u
		}
	}
	return org
}

// personRef builds a minimal Person fragment around a name field with an
// optional url field.
func personRef(rec jsonld.Record, nameKey, urlKey string) jsonld.Document {
	if !rec.Has(nameKey) {
		return nil
	}
	p := jsonld.Document{
		"@type": "Person",
		"name":  sanitize.Text(rec.String(nameKey)),
	}
	if urlKey != "" {
		if u := sanitize.URL(rec.String(urlKey)); u != "" {
			p["url"] = u
		}
	}
	return p
}

// socialProfiles collects sameAs URLs from the given platform fields in a
// fixed order.
func socialProfiles(rec jsonld.Record, platforms []string) []any {
	var sameAs []any
	for _, platform := range platforms {
		if u := sanitize.URL(rec.String(platform)); u != "" {
			sameAs = append(sameAs, u)
		}
	}
	return sameAs
}

// aggregateRating builds an AggregateRating fragment; ratingValue and
// ratingCount must both be present, bestRating is optional.
func aggregateRating(rec jsonld.Record) jsonld.Document {
	if !rec.Has("rating_value") || !rec.Has("rating_count") {
		return nil
	}
	value, ok := rec.Float("rating_value")
	if !ok {
		return nil
	}
	rating := jsonld.Document{
		"@type":       "AggregateRating",
		"ratingValue": value,
		"ratingCount": rec.Int("rating_count"),
	}
	if best, ok := rec.Float("best_rating"); ok && rec.Has("best_rating") {
		rating["bestRating"] = best
	}
	return rating
}
