package jsonld

import "time"

// SchemaType identifies one of the supported schema.org document kinds. The
// set is closed: dispatch happens through a static table, never by deriving
// symbol names from the string.
type SchemaType string

const (
	TypeOrganization  SchemaType = "organization"
	TypeLocalBusiness SchemaType = "localbusiness"
	TypeEvent         SchemaType = "event"
	TypeFAQPage       SchemaType = "faqpage"
	TypeArticle       SchemaType = "article"
	TypeScholarly     SchemaType = "scholarly"
	TypeService       SchemaType = "service"
	TypeHowTo         SchemaType = "howto"
	TypePerson        SchemaType = "person"
	TypeJobPosting    SchemaType = "jobposting"
	TypeCourse        SchemaType = "course"
	TypeVideo         SchemaType = "video"
)

// Types lists every supported schema type in wizard display order.
func Types() []SchemaType {
	return []SchemaType{
		TypeLocalBusiness, TypeEvent, TypeVideo, TypeJobPosting,
		TypeCourse, TypeFAQPage, TypeArticle, TypeScholarly,
		TypeService, TypeHowTo, TypePerson, TypeOrganization,
	}
}

// Context is the constant @context value of every generated document.
const Context = "https://schema.org"

// Record is the loosely-typed input to generation and validation: field name
// to scalar, nested Record, or list of Records. No field is intrinsically
// required by the container; requiredness lives in the validator.
type Record map[string]any

// Document is a generated schema.org fragment. The two marker keys @context
// and @type are always present and survive the Clean pass unconditionally.
type Document map[string]any

// PageContext carries the content-derived data a generator may fall back to:
// the permalink for canonical-URL fallbacks and post metadata for auto-fill
// and date defaults. A nil *PageContext simply disables the fallbacks.
type PageContext struct {
	Permalink         string
	Title             string
	Excerpt           string
	Body              string
	PrimaryImageURL   string
	AuthorDisplayName string
	PublishedAt       time.Time
	ModifiedAt        time.Time
}

// Result is the outcome of validating a Record against a schema type.
// Errors block persistence; Warnings are informational and block nothing.
// A Result with warnings only is still Valid.
type Result struct {
	Valid    bool
	Errors   Issues
	Warnings Issues
}
