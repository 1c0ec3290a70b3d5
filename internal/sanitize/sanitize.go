// Package sanitize scrubs form-supplied values before they enter a generated
// document. Free text is stripped of all markup; the handful of designated
// rich-text fields keep a constrained safe-HTML subset.
package sanitize

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// strict removes every tag; rich keeps the user-generated-content
	// subset (basic formatting, links, no scripts or event handlers).
	strict = bluemonday.StrictPolicy()
	rich   = bluemonday.UGCPolicy()
)

// Text returns a single-line plain-text value: tags stripped, control
// whitespace collapsed to single spaces, trimmed.
func Text(s string) string {
	out := strict.Sanitize(s)
	return strings.Join(strings.Fields(out), " ")
}

// Textarea returns a multi-line plain-text value: tags stripped, lines kept,
// trimmed.
func Textarea(s string) string {
	out := strict.Sanitize(s)
	lines := strings.Split(out, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// HTML keeps the constrained safe-HTML subset used by rich-text fields
// (article body, FAQ answer, job description, video transcript).
func HTML(s string) string {
	return strings.TrimSpace(rich.Sanitize(s))
}

// URL normalizes a URL-typed field to absolute form. Anything that is not an
// absolute http(s) URL comes back empty; generators treat that as absence
// rather than an error.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// Email returns the bare address when s parses as one, "" otherwise.
func Email(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	a, err := mail.ParseAddress(s)
	if err != nil {
		return ""
	}
	return a.Address
}
