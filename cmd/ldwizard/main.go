package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	jsonld "github.com/seoforge/jsonld"
	"github.com/seoforge/jsonld/i18n"
	"github.com/seoforge/jsonld/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "generate":
		generateCmd(os.Args[2:])
	case "emit":
		emitCmd(os.Args[2:])
	case "types":
		typesCmd()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "ldwizard CLI\n\nUsage:\n  ldwizard validate -type T -in record.yaml [-lang en|ja]\n  ldwizard generate -type T -in record.yaml [-org org.yaml] [-permalink URL]\n  ldwizard emit     -type T -in record.yaml [-org org.yaml] [-permalink URL]\n  ldwizard types\n\nNotes:\n  - The input record may be YAML or JSON, chosen by file extension.\n  - generate prints the cleaned JSON-LD document; emit wraps it in the\n    script envelope used in page output.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var typ, in, lang string
	fs.StringVar(&typ, "type", "", "schema type (organization, article, faqpage, ...)")
	fs.StringVar(&in, "in", "", "input record file (.yaml or .json)")
	fs.StringVar(&lang, "lang", "en", "message language")
	_ = fs.Parse(args)
	if typ == "" || in == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	rec := readRecord(in)
	res := schema.Validate(jsonld.SchemaType(typ), rec)
	for _, msg := range res.Warnings.Messages() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	for _, msg := range res.Errors.Messages() {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	if !res.Valid {
		os.Exit(1)
	}
	fmt.Println("valid")
}

func generateCmd(args []string) {
	doc := runGenerate("generate", args)
	out, err := jsonld.Marshal(doc)
	if err != nil {
		fatalf("serialize: %v", err)
	}
	fmt.Println(out)
}

func emitCmd(args []string) {
	doc := runGenerate("emit", args)
	out, err := jsonld.Emit(doc)
	if err != nil {
		fatalf("serialize: %v", err)
	}
	fmt.Print(out)
}

func typesCmd() {
	for _, t := range jsonld.Types() {
		fmt.Println(t)
	}
}

func runGenerate(name string, args []string) jsonld.Document {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var typ, in, orgPath, permalink string
	fs.StringVar(&typ, "type", "", "schema type (organization, article, faqpage, ...)")
	fs.StringVar(&in, "in", "", "input record file (.yaml or .json)")
	fs.StringVar(&orgPath, "org", "", "organization defaults file (.yaml)")
	fs.StringVar(&permalink, "permalink", "", "page URL used for url fallbacks")
	_ = fs.Parse(args)
	if typ == "" || in == "" {
		fs.Usage()
		os.Exit(2)
	}

	rec := readRecord(in)
	if orgPath != "" {
		org := readOrgDefaults(orgPath)
		// Defaults fill gaps only; explicit record fields win.
		for k, v := range org.Record() {
			if !rec.Has(k) {
				rec[k] = v
			}
		}
	}
	var pc *jsonld.PageContext
	if permalink != "" {
		pc = &jsonld.PageContext{Permalink: permalink}
	}

	doc, err := schema.Generate(jsonld.SchemaType(typ), rec, pc)
	if err != nil {
		fatalf("generate: %v", err)
	}
	if doc == nil {
		fatalf("unknown type or empty record: %q", typ)
	}
	return doc
}

func readRecord(path string) jsonld.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			fatalf("decoding %s: %v", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			fatalf("decoding %s: %v", path, err)
		}
	}
	return normalizeRecord(raw)
}

func readOrgDefaults(path string) jsonld.OrgDefaults {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading org defaults: %v", err)
	}
	org, err := jsonld.OrgDefaultsFromYAML(data)
	if err != nil {
		fatalf("decoding %s: %v", path, err)
	}
	return org
}

// normalizeRecord rewrites the map[any]any shapes some YAML decodings
// produce into the map[string]any the record API expects.
func normalizeRecord(raw map[string]any) jsonld.Record {
	rec := jsonld.Record{}
	for k, v := range raw {
		rec[k] = normalizeValue(v)
	}
	return rec
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := map[string]any{}
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case map[any]any:
		out := map[string]any{}
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	default:
		return v
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
