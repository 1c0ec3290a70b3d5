// Package schema holds the per-type JSON-LD generators and the validator.
//
// Every generator is a pure function from a jsonld.Record to a
// jsonld.Document and is maximally permissive: missing fields are omitted,
// malformed URLs and dates degrade to omitted properties, and the document
// is produced even when validation would reject the record. Validation is a
// separate, independent call.
package schema

import (
	jsonld "github.com/seoforge/jsonld"
)

type generatorFunc func(rec jsonld.Record, pc *jsonld.PageContext) jsonld.Document

// generators is the closed dispatch table, resolved at init rather than by
// deriving handler names from the type string.
var generators = map[jsonld.SchemaType]generatorFunc{
	jsonld.TypeOrganization:  generateOrganization,
	jsonld.TypeLocalBusiness: generateLocalBusiness,
	jsonld.TypeEvent:         generateEvent,
	jsonld.TypeFAQPage:       generateFAQPage,
	jsonld.TypeArticle:       generateArticle,
	jsonld.TypeScholarly:     generateScholarly,
	jsonld.TypeService:       generateService,
	jsonld.TypeHowTo:         generateHowTo,
	jsonld.TypePerson:        generatePerson,
	jsonld.TypeJobPosting:    generateJobPosting,
	jsonld.TypeCourse:        generateCourse,
	jsonld.TypeVideo:         generateVideo,
}

// TransformFunc post-processes a generated document. Hooks run inside
// Generate in registration order; returning an error aborts generation and
// propagates to the caller.
type TransformFunc func(doc jsonld.Document, typ jsonld.SchemaType, rec jsonld.Record, pc *jsonld.PageContext) (jsonld.Document, error)

// transforms is appended to at startup only; Generate reads it without
// locking.
var transforms []TransformFunc

// RegisterTransform adds a post-generation hook. Register at startup, before
// the first Generate call; registration is not synchronized.
func RegisterTransform(fn TransformFunc) {
	if fn != nil {
		transforms = append(transforms, fn)
	}
}

func resetTransforms() { transforms = nil }

// Generate builds the JSON-LD document for the given type and record. It
// returns (nil, nil) when the type or record is empty or when no generator
// is registered for the type; callers are expected to check for nil. The
// only error path is a failing transform hook.
func Generate(typ jsonld.SchemaType, rec jsonld.Record, pc *jsonld.PageContext) (jsonld.Document, error) {
	if typ == "" || len(rec) == 0 {
		return nil, nil
	}
	gen, ok := generators[typ]
	if !ok {
		return nil, nil
	}
	doc := gen(rec, pc)
	for _, fn := range transforms {
		next, err := fn(doc, typ, rec, pc)
		if err != nil {
			return nil, err
		}
		doc = next
	}
	return doc, nil
}

// Known reports whether a generator is registered for the type.
func Known(typ jsonld.SchemaType) bool {
	_, ok := generators[typ]
	return ok
}

// newDocument seeds a document with the two marker keys every generated
// fragment carries.
func newDocument(atType string) jsonld.Document {
	return jsonld.Document{
		"@context": jsonld.Context,
		"@type":    atType,
	}
}

// permalink returns the context permalink, tolerating a nil context.
func permalink(pc *jsonld.PageContext) string {
	if pc == nil {
		return ""
	}
	return pc.Permalink
}
