package wizard

import (
	"strings"
	"time"
	"unicode"

	jsonld "github.com/seoforge/jsonld"
)

const excerptWords = 30

// AutoFill seeds a record for the given type from page context and the
// organization defaults. Every field is a plain default the caller may
// overwrite before validation or generation; nothing here is mandatory.
func AutoFill(typ jsonld.SchemaType, pc *jsonld.PageContext, org jsonld.OrgDefaults) jsonld.Record {
	rec := jsonld.Record{}
	if typ == jsonld.TypeOrganization {
		return org.Record()
	}
	if pc != nil {
		if pc.Title != "" {
			rec["name"] = pc.Title
		}
		if desc := pageDescription(pc); desc != "" {
			rec["description"] = desc
		}
		if pc.PrimaryImageURL != "" {
			rec["image"] = pc.PrimaryImageURL
		}
	}

	switch typ {
	case jsonld.TypeArticle, jsonld.TypeScholarly:
		fillArticle(rec, pc, org)
	case jsonld.TypeEvent:
		if org.Name != "" {
			rec["organizer_name"] = org.Name
			if org.URL != "" {
				rec["organizer_url"] = org.URL
			}
		}
	case jsonld.TypeLocalBusiness:
		fillAddress(rec, org)
		if org.Telephone != "" {
			rec["telephone"] = org.Telephone
		}
		if org.StreetAddress != "" {
			rec["street_address"] = org.StreetAddress
		}
	case jsonld.TypeService:
		if org.Name != "" {
			rec["provider_name"] = org.Name
		}
	case jsonld.TypeJobPosting:
		fillJobPosting(rec, pc, org)
	case jsonld.TypeCourse:
		if org.Name != "" {
			rec["provider_name"] = org.Name
			if org.URL != "" {
				rec["provider_url"] = org.URL
			}
		}
	case jsonld.TypeVideo:
		if pc != nil && !pc.PublishedAt.IsZero() {
			rec["upload_date"] = pc.PublishedAt.Format(time.RFC3339)
		}
	}
	return rec
}

func fillArticle(rec jsonld.Record, pc *jsonld.PageContext, org jsonld.OrgDefaults) {
	if pc != nil {
		if pc.Title != "" {
			rec["headline"] = pc.Title
		}
		if !pc.PublishedAt.IsZero() {
			rec["datePublished"] = pc.PublishedAt.Format(time.RFC3339)
		}
		if !pc.ModifiedAt.IsZero() {
			rec["dateModified"] = pc.ModifiedAt.Format(time.RFC3339)
		}
		if pc.AuthorDisplayName != "" {
			rec["author_name"] = pc.AuthorDisplayName
		}
	}
	if org.Name != "" {
		rec["publisher_name"] = org.Name
		if org.Logo != "" {
			rec["publisher_logo"] = org.Logo
		}
	}
}

func fillJobPosting(rec jsonld.Record, pc *jsonld.PageContext, org jsonld.OrgDefaults) {
	if pc != nil {
		if pc.Title != "" {
			rec["title"] = pc.Title
		}
		if !pc.PublishedAt.IsZero() {
			rec["date_posted"] = pc.PublishedAt.Format("2006-01-02")
		}
	}
	if org.Name != "" {
		rec["hiring_organization"] = org.Name
		if org.URL != "" {
			rec["organization_url"] = org.URL
		}
		if org.Logo != "" {
			rec["organization_logo"] = org.Logo
		}
	}
	fillAddress(rec, org)
}

func fillAddress(rec jsonld.Record, org jsonld.OrgDefaults) {
	if org.AddressLocality != "" {
		rec["address_locality"] = org.AddressLocality
	}
	if org.AddressRegion != "" {
		rec["address_region"] = org.AddressRegion
	}
	if org.PostalCode != "" {
		rec["postal_code"] = org.PostalCode
	}
	if org.AddressCountry != "" {
		rec["address_country"] = org.AddressCountry
	}
}

func pageDescription(pc *jsonld.PageContext) string {
	if pc.Excerpt != "" {
		return strings.TrimSpace(pc.Excerpt)
	}
	return trimWords(pc.Body, excerptWords)
}

// trimWords strips markup from text and truncates it to at most n words,
// appending an ellipsis when anything was cut.
func trimWords(text string, n int) string {
	plain := stripTags(text)
	words := strings.Fields(plain)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "…"
}

// stripTags removes anything between angle brackets. Good enough for an
// excerpt; the sanitizer handles fields that actually reach output.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
			b.WriteRune(' ')
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			if unicode.IsControl(r) && r != '\n' && r != '\t' {
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
