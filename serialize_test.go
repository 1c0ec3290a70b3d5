package jsonld_test

import (
	"strings"
	"testing"

	jsonld "github.com/seoforge/jsonld"
)

func TestMarshalUnescaped(t *testing.T) {
	doc := jsonld.Document{
		"@context": jsonld.Context,
		"@type":    "Organization",
		"url":      "https://example.org/about?a=1&b=2",
		"name":     "日本支部",
	}
	out, err := jsonld.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, `\/`) {
		t.Fatalf("slashes escaped: %s", out)
	}
	if !strings.Contains(out, "日本支部") {
		t.Fatalf("unicode escaped: %s", out)
	}
	if !strings.Contains(out, "&") || strings.Contains(out, `\u0026`) {
		t.Fatalf("ampersand escaped: %s", out)
	}
}

func TestMarshalNilDocument(t *testing.T) {
	if _, err := jsonld.Marshal(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}

func TestMarshalDeterministic(t *testing.T) {
	doc := jsonld.Document{
		"@context": jsonld.Context,
		"@type":    "Person",
		"name":     "Ada",
		"jobTitle": "Engineer",
		"empty":    "",
	}
	first, err := jsonld.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := jsonld.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("serialization unstable:\n%s\n---\n%s", first, second)
	}
}

func TestEmitEnvelope(t *testing.T) {
	doc := jsonld.Document{
		"@context": jsonld.Context,
		"@type":    "FAQPage",
	}
	out, err := jsonld.Emit(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, fragment := range []string{
		"<!-- seoforge/jsonld -->",
		`<script type="application/ld+json">`,
		"</script>",
		"<!-- / seoforge/jsonld -->",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("envelope missing %q:\n%s", fragment, out)
		}
	}
}

// The envelope is structurally identical no matter how sparse the document
// is; an empty-but-typed document still serializes to a valid script block.
func TestEmitEnvelopeInvariantForSparseDocument(t *testing.T) {
	full := jsonld.Document{"@context": jsonld.Context, "@type": "Person", "name": "Ada"}
	sparse := jsonld.Document{"@context": jsonld.Context, "@type": "Person", "name": ""}

	outFull, err := jsonld.Emit(full)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outSparse, err := jsonld.Emit(sparse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, out := range []string{outFull, outSparse} {
		if !strings.HasPrefix(out, "\n<!-- seoforge/jsonld -->\n") {
			t.Fatalf("prefix wrong: %q", out[:40])
		}
		if !strings.HasSuffix(out, "<!-- / seoforge/jsonld -->\n\n") {
			t.Fatalf("suffix wrong: %q", out[len(out)-40:])
		}
	}
	if strings.Contains(outSparse, `"name"`) {
		t.Fatalf("empty name leaked into output:\n%s", outSparse)
	}
}
