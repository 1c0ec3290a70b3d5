package schema

import (
	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// organizationPlatforms is the fixed sameAs collection order.
var organizationPlatforms = []string{"facebook", "twitter", "linkedin", "instagram", "youtube"}

// generateOrganization builds an Organization document. The @type is
// overridable via the "type" field (NGO, PoliticalOrganization,
// EducationalOrganization, ...); NGO and PoliticalOrganization replace the
// description with the mission statement when one is set.
func generateOrganization(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	orgType := rec.String("type")
	if orgType == "" {
		orgType = "Organization"
	}
	doc := newDocument(orgType)

	if rec.Has("name") {
		doc["name"] = sanitize.Text(rec.String("name"))
	}
	if u := sanitize.URL(rec.String("url")); u != "" {
		doc["url"] = u
	}
	if u := sanitize.URL(rec.String("logo")); u != "" {
		doc["logo"] = u
	}
	if rec.Has("description") {
		doc["description"] = sanitize.Textarea(rec.String("description"))
	}

	if addr := postalAddress(rec); addr != nil {
		doc["address"] = addr
	}
	if contact := contactPoint(rec); contact != nil {
		doc["contactPoint"] = contact
	}
	if sameAs := socialProfiles(rec, organizationPlatforms); len(sameAs) > 0 {
		doc["sameAs"] = sameAs
	}

	addOrganizationTypeFields(doc, rec, orgType)
	return doc
}

// contactPoint builds a ContactPoint fragment from telephone/email, nil when
// neither is present.
func contactPoint(rec jsonld.Record) jsonld.Document {
	if !rec.Has("telephone") && !rec.Has("email") {
		return nil
	}
	contact := jsonld.Document{"@type": "ContactPoint"}
	if rec.Has("telephone") {
		contact["telephone"] = sanitize.Text(rec.String("telephone"))
	}
	if e := sanitize.Email(rec.String("email")); e != "" {
		contact["email"] = e
	}
	if rec.Has("contact_type") {
		contact["contactType"] = sanitize.Text(rec.String("contact_type"))
	}
	return contact
}

func addOrganizationTypeFields(doc jsonld.Document, rec jsonld.Record, orgType string) {
	if orgType == "NGO" || orgType == "PoliticalOrganization" {
		if rec.Has("mission_statement") {
			doc["description"] = sanitize.Textarea(rec.String("mission_statement"))
		}
		if rec.Has("founding_date") {
			doc["foundingDate"] = sanitize.Text(rec.String("founding_date"))
		}
		if rec.Has("nonprofit_status") {
			doc["nonprofitStatus"] = sanitize.Text(rec.String("nonprofit_status"))
		}
	}

	if rec.Has("founder") {
		doc["founder"] = jsonld.Document{
			"@type": "Person",
			"name":  sanitize.Text(rec.String("founder")),
		}
	}
	if rec.Has("number_of_employees") {
		doc["numberOfEmployees"] = rec.Int("number_of_employees")
	}
}
