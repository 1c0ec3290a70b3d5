// Package conflict decides whether a generated document should be emitted
// at all. Other systems on the same site may already emit equivalent
// structured data; doubling up confuses crawlers, so emission is gated for
// the types where duplicates matter. Only article-equivalent types and the
// site-wide Organization type are gated; everything else always passes.
package conflict

import jsonld "github.com/seoforge/jsonld"

// Probe reports whether one external system is already emitting structured
// data. Article is consulted per page, Organization once for the whole
// site. A nil check means the probe has no opinion for that scope.
type Probe struct {
	Name         string
	Article      func(pageID string) bool
	Organization func() bool
}

// Overrides answers whether a page carries an explicit "emit anyway" flag
// for a type. Overrides defeat suppression; they are set by a human who
// looked at the warning and decided the duplicate is acceptable.
type Overrides interface {
	Allow(pageID string, typ jsonld.SchemaType) bool
}

// Gate evaluates probes against the type being emitted.
type Gate struct {
	probes    []Probe
	overrides Overrides
}

// NewGate builds a gate over the given probes. overrides may be nil, in
// which case nothing is ever overridden.
func NewGate(probes []Probe, overrides Overrides) *Gate {
	return &Gate{probes: probes, overrides: overrides}
}

// ShouldSuppress reports whether emitting typ for the page would duplicate
// another system's output. Non-gated types never suppress.
func (g *Gate) ShouldSuppress(pageID string, typ jsonld.SchemaType) bool {
	if g == nil {
		return false
	}
	switch typ {
	case jsonld.TypeArticle, jsonld.TypeScholarly:
		if !g.articleConflict(pageID) {
			return false
		}
	case jsonld.TypeOrganization:
		if !g.organizationConflict() {
			return false
		}
	default:
		return false
	}
	if g.overrides != nil && g.overrides.Allow(pageID, typ) {
		return false
	}
	return true
}

// Conflicts names the probes currently reporting a conflict for the type,
// for warning display.
func (g *Gate) Conflicts(pageID string, typ jsonld.SchemaType) []string {
	if g == nil {
		return nil
	}
	var names []string
	for _, p := range g.probes {
		switch typ {
		case jsonld.TypeArticle, jsonld.TypeScholarly:
			if p.Article != nil && p.Article(pageID) {
				names = append(names, p.Name)
			}
		case jsonld.TypeOrganization:
			if p.Organization != nil && p.Organization() {
				names = append(names, p.Name)
			}
		}
	}
	return names
}

func (g *Gate) articleConflict(pageID string) bool {
	for _, p := range g.probes {
		if p.Article != nil && p.Article(pageID) {
			return true
		}
	}
	return false
}

func (g *Gate) organizationConflict() bool {
	for _, p := range g.probes {
		if p.Organization != nil && p.Organization() {
			return true
		}
	}
	return false
}
