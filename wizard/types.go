// Package wizard supplies the guided pieces around the core: the type
// metadata shown when picking a schema type, a content heuristic that
// suggests a type from page text, and the auto-fill pass that seeds a
// record from page context and organization defaults.
package wizard

import jsonld "github.com/seoforge/jsonld"

// TypeInfo describes a schema type for selection UIs. ConflictCheck marks
// the types subject to the conflict gate before emission.
type TypeInfo struct {
	Type          jsonld.SchemaType
	Label         string
	Description   string
	ConflictCheck bool
}

var typeTable = []TypeInfo{
	{jsonld.TypeOrganization, "Organization", "Your organization's identity, shown site-wide", true},
	{jsonld.TypeLocalBusiness, "Business/Organization Location", "A physical location with address and contact info", false},
	{jsonld.TypeEvent, "Event (Fundraiser, Rally, Meeting)", "An event with date, time, and location", false},
	{jsonld.TypeVideo, "Video Content", "Video content including YouTube, Vimeo, or self-hosted videos", false},
	{jsonld.TypeJobPosting, "Job Posting", "A job opening your organization is hiring for", false},
	{jsonld.TypeCourse, "Course or Training Program", "Educational course, workshop, or training", false},
	{jsonld.TypeFAQPage, "FAQ or Support Content", "Questions and answers about a topic", false},
	{jsonld.TypeArticle, "Blog Post or News Article", "A standard blog post or news article", true},
	{jsonld.TypeScholarly, "Research Paper or Publication", "Academic or scholarly publication", true},
	{jsonld.TypeService, "Service We Offer", "A service provided by your organization", false},
	{jsonld.TypeHowTo, "How-To Guide or Tutorial", "Step-by-step instructions", false},
	{jsonld.TypePerson, "Person Profile (Candidate, Staff)", "Profile of an individual person", false},
}

// Types returns the selectable schema types in display order.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(typeTable))
	copy(out, typeTable)
	return out
}

// Info looks up the metadata for a type; ok is false for unknown types.
func Info(typ jsonld.SchemaType) (TypeInfo, bool) {
	for _, info := range typeTable {
		if info.Type == typ {
			return info, true
		}
	}
	return TypeInfo{}, false
}
