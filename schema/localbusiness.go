package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

var localBusinessPlatforms = []string{"facebook", "twitter", "instagram", "linkedin", "yelp"}

// generateLocalBusiness builds a LocalBusiness document. The @type is
// overridable via "business_type" (Restaurant, Store, ...). The address is
// structurally required and always emitted, even when its fields are empty;
// geo coordinates appear only when latitude and longitude are both present.
func generateLocalBusiness(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	bizType := rec.String("business_type")
	if bizType == "" {
		bizType = "LocalBusiness"
	}
	doc := newDocument(bizType)

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	doc["address"] = addressFields(rec)

	if rec.Has("telephone") {
		doc["telephone"] = sanitize.Text(rec.String("telephone"))
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

	// openingHours passes through as string or list verbatim; day-grammar
	// validation is out of scope.
	if hours := openingHours(rec); hours != nil {
		doc["openingHours"] = hours
	}
	if rec.Has("price_range") {
		doc["priceRange"] = sanitize.Text(rec.String("price_range"))
	}
	if geo := geoCoordinates(rec); geo != nil {
		doc["geo"] = geo
	}

	addBusinessFields(doc, rec)
	return doc
}

// openingHours resolves the string-or-list union once at the top instead of
// type-switching on every use site.
func openingHours(rec jsonld.Record) any {
	u := rec.StringOrList("opening_hours")
	if u.IsZero() {
		return nil
	}
	if len(u.List) > 0 {
		items := make([]any, len(u.List))
		for i, h := range u.List {
			items[i] = sanitize.Text(h)
		}
		return items
	}
	return sanitize.Text(u.Str)
}

func geoCoordinates(rec jsonld.Record) jsonld.Document {
	if !rec.Has("latitude") || !rec.Has("longitude") {
		return nil
	}
	lat, okLat := rec.Float("latitude")
	lng, okLng := rec.Float("longitude")
	if !okLat || !okLng {
		return nil
	}
	return jsonld.Document{
		"@type":     "GeoCoordinates",
		"latitude":  lat,
		"longitude": lng,
	}
}

func addBusinessFields(doc jsonld.Document, rec jsonld.Record) {
	if rec.Has("payment_accepted") {
		doc["paymentAccepted"] = sanitize.Text(rec.String("payment_accepted"))
	}
	if rec.Has("currencies_accepted") {
		doc["currenciesAccepted"] = sanitize.Text(rec.String("currencies_accepted"))
	}
	if e := sanitize.Email(rec.String("email")); e != "" {
		doc["email"] = e
	}
	if rec.Has("serves_cuisine") {
		doc["servesCuisine"] = sanitize.Text(rec.String("serves_cuisine"))
	}
	if u := sanitize.URL(rec.String("menu_url")); u != "" {
		doc["hasMenu"] = u
	}
	if rec.Has("area_served") {
		doc["areaServed"] = sanitize.Text(rec.String("area_served"))
	}
	if rating := aggregateRating(rec); rating != nil {
		doc["aggregateRating"] = rating
	}
	if sameAs := socialProfiles(rec, localBusinessPlatforms); len(sameAs) > 0 {
		doc["sameAs"] = sameAs
	}
}
