package wizard

import (
	"regexp"
	"strings"

	jsonld "github.com/seoforge/jsonld"
)

var (
	faqPattern   = regexp.MustCompile(`(?i)\b(what|where|when|who|why|how)\b.*\?`)
	howToPattern = regexp.MustCompile(`(?i)\b(step 1|step 2|how to|tutorial|guide)\b`)
	eventPattern = regexp.MustCompile(`(?i)\b(event|rally|fundraiser|meeting|conference)\b`)
)

// DetectContentType suggests a schema type from the page title and body.
// isPost marks blog-style content, which falls back to article when no
// pattern matches; other content yields "" (no suggestion). The patterns
// are deliberately crude: the result is a starting point for a human, not
// a classification.
func DetectContentType(pc *jsonld.PageContext, isPost bool) jsonld.SchemaType {
	content := ""
	if pc != nil {
		content = strings.ToLower(pc.Body + " " + pc.Title)
	}
	switch {
	case faqPattern.MatchString(content):
		return jsonld.TypeFAQPage
	case howToPattern.MatchString(content):
		return jsonld.TypeHowTo
	case eventPattern.MatchString(content):
		return jsonld.TypeEvent
	case isPost:
		return jsonld.TypeArticle
	default:
		return ""
	}
}
