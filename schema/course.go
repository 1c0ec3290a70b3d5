package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

func generateCourse(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("Course")

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if provider := organizationRef(rec, "provider_name", "provider_url"); provider != nil {
		doc["provider"] = provider
	}
	if rec.Has("course_code") {
		doc["courseCode"] = sanitize.Text(rec.String("course_code"))
	}
	if u := sanitize.URL(rec.String("course_url")); u != "" {
		doc["url"] = u
	} else if p := permalink(pc); p != "" {
		doc["url"] = p
	}
	if u := sanitize.URL(rec.String("image")); u != "" {
		doc["image"] = u
	}
	if rec.Has("course_mode") {
		doc["courseMode"] = sanitize.Text(rec.String("course_mode"))
	}
	if offer := courseOffer(rec); offer != nil {
		doc["offers"] = offer
	}
	if prereqs := rec.StringOrList("course_prerequisites"); !prereqs.IsZero() {
		doc["coursePrerequisites"] = prereqs.Any()
	}
	if rec.Has("educational_level") {
		doc["educationalLevel"] = sanitize.Text(rec.String("educational_level"))
	}
	if rec.Has("time_required") {
		doc["timeRequired"] = sanitize.Text(rec.String("time_required"))
	}
	if instructor := personRef(rec, "instructor_name", "instructor_url"); instructor != nil {
		if rec.Has("instructor_description") {
			instructor["description"] = sanitize.Textarea(rec.String("instructor_description"))
		}
		doc["instructor"] = instructor
	}
	if rec.Has("in_language") {
		doc["inLanguage"] = sanitize.Text(rec.String("in_language"))
	}
	if instance := courseInstance(rec); instance != nil {
		doc["hasCourseInstance"] = instance
	}
	if rec.Has("course_workload") {
		doc["courseWorkload"] = sanitize.Text(rec.String("course_workload"))
	}
	if rating := aggregateRating(rec); rating != nil {
		doc["aggregateRating"] = rating
	}
	return doc
}

// courseOffer emits an offer whenever a price is present. Free courses set
// price to 0 and still get an offer; Google will not show course rich
// results without one.
func courseOffer(rec jsonld.Record) jsonld.Document {
	if !rec.Has("price") {
		return nil
	}
	currency := sanitize.Text(rec.String("price_currency"))
	if currency == "" {
		currency = "USD"
	}
	offer := jsonld.Document{
		"@type":         "Offer",
		"price":         rec.Value("price"),
		"priceCurrency": currency,
		"availability":  "https://schema.org/InStock",
	}
	if rec.Has("valid_from") {
		offer["validFrom"] = sanitize.Text(rec.String("valid_from"))
	}
	if rec.Has("valid_through") {
		offer["validThrough"] = sanitize.Text(rec.String("valid_through"))
	}
	if u := sanitize.URL(rec.String("enrollment_url")); u != "" {
		offer["url"] = u
	}
	return offer
}

func courseInstance(rec jsonld.Record) jsonld.Document {
	if !rec.Has("availability_starts") {
		return nil
	}
	mode := sanitize.Text(rec.String("course_mode"))
	if mode == "" {
		mode = "Online"
	}
	instance := jsonld.Document{
		"@type":      "CourseInstance",
		"courseMode": mode,
		"startDate":  sanitize.Text(rec.String("availability_starts")),
	}
	if rec.Has("availability_ends") {
		instance["endDate"] = sanitize.Text(rec.String("availability_ends"))
	}
	return instance
}
