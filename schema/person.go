package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

var personPlatforms = []string{"facebook", "twitter", "linkedin", "instagram", "youtube", "github"}

func generatePerson(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("Person")

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if u := sanitize.URL(rec.String("image")); u != "" {
		doc["image"] = u
	}
	if rec.Has("job_title") {
		doc["jobTitle"] = sanitize.Text(rec.String("job_title"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}
	if email := sanitize.Email(rec.String("email")); email != "" {
		doc["email"] = email
	}
	if rec.Has("telephone") {
		doc["telephone"] = sanitize.Text(rec.String("telephone"))
	}
	if u := sanitize.URL(rec.String("url")); u != "" {
		doc["url"] = u
	} else if p := permalink(pc); p != "" {
		doc["url"] = p
	}

	for key, prop := range map[string]string{
		"affiliation": "affiliation",
		"member_of":   "memberOf",
		"alumni_of":   "alumniOf",
	} {
		if rec.Has(key) {
			doc[prop] = jsonld.Document{
				"@type": "Organization",
				"name":  sanitize.Text(rec.String(key)),
			}
		}
	}

	if rec.Has("birth_date") {
		doc["birthDate"] = sanitize.Text(rec.String("birth_date"))
	}
	if addr := postalAddress(rec); addr != nil {
		doc["address"] = addr
	}
	if profiles := socialProfiles(rec, personPlatforms); len(profiles) > 0 {
		doc["sameAs"] = profiles
	}
	if langs := rec.StringOrList("knows_language"); !langs.IsZero() {
		doc["knowsLanguage"] = langs.Any()
	}
	return doc
}
