package schema

import (
	"time"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/internal/sanitize"
)

// generateJobPosting builds a JobPosting document. Remote postings carry
// jobLocationType TELECOMMUTE and no jobLocation; on-site postings carry a
// jobLocation Place and no jobLocationType. The two properties never appear
// together.
func generateJobPosting(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document {
	doc := newDocument("JobPosting")

	if rec.Has("title") {
		doc["title"] = sanitize.Text(rec.String("title"))
	}
	if rec.Has("description") {
		doc["description"] = sanitize.HTML(rec.String("description"))
	}
	if rec.Has("date_posted") {
		doc["datePosted"] = sanitize.Text(rec.String("date_posted"))
	} else if pc != nil && !pc.PublishedAt.IsZero() {
		doc["datePosted"] = pc.PublishedAt.Format(time.RFC3339)
	}

	if rec.Has("hiring_organization") {
		org := jsonld.Document{
			"@type": "Organization",
			"name":  sanitize.Text(rec.String("hiring_organization")),
		}
		if u := sanitize.URL(rec.String("organization_url")); u != "" {
			org["sameAs"] = u
		}
		if u := sanitize.URL(rec.String("organization_logo")); u != "" {
			org["logo"] = u
		}
		doc["hiringOrganization"] = org
	}

	addJobLocation(doc, rec)

	if types := rec.StringOrList("employment_type"); !types.IsZero() {
		doc["employmentType"] = types.Any()
	}
	if rec.Has("valid_through") {
		doc["validThrough"] = sanitize.Text(rec.String("valid_through"))
	}
	if salary := baseSalary(rec); salary != nil {
		doc["baseSalary"] = salary
	}

	if u := sanitize.URL(rec.String("application_url")); u != "" {
		doc["directApply"] = true
		doc["url"] = u
	} else if p := permalink(pc); p != "" {
		doc["url"] = p
	}

	if rec.Has("job_benefits") {
		doc["jobBenefits"] = sanitize.Textarea(rec.String("job_benefits"))
	}
	if rec.Has("education_requirements") {
		doc["educationRequirements"] = sanitize.Text(rec.String("education_requirements"))
	}
	if rec.Has("experience_requirements") {
		doc["experienceRequirements"] = sanitize.Text(rec.String("experience_requirements"))
	}
	if rec.Has("qualifications") {
		doc["qualifications"] = sanitize.Textarea(rec.String("qualifications"))
	}
	if skills := rec.StringOrList("skills"); !skills.IsZero() {
		doc["skills"] = skills.Any()
	}
	return doc
}

// addJobLocation treats anything that is not explicitly remote, including a
// missing location_type, as the physical case: whether a jobLocation appears
// then depends only on the address fields.
func addJobLocation(doc jsonld.Document, rec jsonld.Record) {
	if rec.String("location_type") == "remote" {
		doc["jobLocationType"] = "TELECOMMUTE"
		return
	}
	if !rec.Has("address_locality") && !rec.Has("address_region") && !rec.Has("address_country") {
		return
	}
	doc["jobLocation"] = jsonld.Document{
		"@type":   "Place",
		"address": addressFields(rec),
	}
}

// baseSalary requires both a currency and a value; a value of 0 is valid.
func baseSalary(rec jsonld.Record) jsonld.Document {
	if !rec.Has("salary_currency") || !rec.Has("salary_value") {
		return nil
	}
	value := jsonld.Document{
		"@type": "QuantitativeValue",
		"value": rec.Value("salary_value"),
	}
	if rec.Has("salary_unit") {
		value["unitText"] = sanitize.Text(rec.String("salary_unit"))
	}
	return jsonld.Document{
		"@type":    "MonetaryAmount",
		"currency": sanitize.Text(rec.String("salary_currency")),
		"value":    value,
	}
}
