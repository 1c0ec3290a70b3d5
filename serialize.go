package jsonld

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Comment markers wrapping the emitted script block, so the source of the
// structured data is identifiable in page source.
const (
	markerOpen  = "<!-- seoforge/jsonld -->"
	markerClose = "<!-- / seoforge/jsonld -->"
)

// Marshal cleans the document and serializes it to indented JSON with
// slashes and non-ASCII text left unescaped, so URLs and international text
// stay readable in page source. Serialization failures (a non-encodable
// value smuggled in by a transform hook) are the one loud error in this
// package: emitting no schema beats emitting broken JSON-LD.
func Marshal(doc Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("jsonld: marshal of nil document")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(map[string]any(doc.Clean())); err != nil {
		return "", fmt.Errorf("jsonld: serialize: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Emit serializes the document and wraps it in the script envelope injected
// into page output.
func Emit(doc Document) (string, error) {
	body, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	b := &strings.Builder{}
	b.WriteString("\n")
	b.WriteString(markerOpen)
	b.WriteString("\n<script type=\"application/ld+json\">\n")
	b.WriteString(body)
	b.WriteString("\n</script>\n")
	b.WriteString(markerClose)
	b.WriteString("\n\n")
	return b.String(), nil
}
