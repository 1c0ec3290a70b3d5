package jsonld_test

import (
	"testing"

	jsonld "github.com/seoforge/jsonld"
)

func TestRecordHas_ZeroIsPresent(t *testing.T) {
	rec := jsonld.Record{
		"price_int":    0,
		"price_float":  0.0,
		"price_string": "0",
		"blank":        "   ",
		"missing_nil":  nil,
		"empty_list":   []any{},
		"full_list":    []any{"a"},
	}
	for _, key := range []string{"price_int", "price_float", "price_string", "full_list"} {
		if !rec.Has(key) {
			t.Fatalf("Has(%q) = false, want true", key)
		}
	}
	for _, key := range []string{"blank", "missing_nil", "empty_list", "absent"} {
		if rec.Has(key) {
			t.Fatalf("Has(%q) = true, want false", key)
		}
	}
}

func TestRecordString(t *testing.T) {
	rec := jsonld.Record{
		"s":  "  hello  ",
		"i":  42,
		"f":  2.5,
		"z":  0,
		"b":  true,
		"bf": false,
	}
	cases := map[string]string{
		"s":      "hello",
		"i":      "42",
		"f":      "2.5",
		"z":      "0",
		"b":      "true",
		"bf":     "",
		"absent": "",
	}
	for key, want := range cases {
		if got := rec.String(key); got != want {
			t.Fatalf("String(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestRecordStringOrList(t *testing.T) {
	rec := jsonld.Record{
		"single": "Mo-Fr 09:00-17:00",
		"many":   []any{"Mo 09:00-17:00", "Sa 10:00-14:00"},
		"empty":  []any{},
	}

	if u := rec.StringOrList("single"); u.Str != "Mo-Fr 09:00-17:00" || len(u.List) != 0 {
		t.Fatalf("single: got %+v", u)
	}
	u := rec.StringOrList("many")
	if len(u.List) != 2 || u.Str != "" {
		t.Fatalf("many: got %+v", u)
	}
	list, ok := u.Any().([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("many Any(): got %#v", u.Any())
	}
	if u := rec.StringOrList("empty"); !u.IsZero() || u.Any() != nil {
		t.Fatalf("empty: got %+v", u)
	}
	if u := rec.StringOrList("absent"); !u.IsZero() {
		t.Fatalf("absent: got %+v", u)
	}
}

func TestRecordList_SkipsNonObjects(t *testing.T) {
	rec := jsonld.Record{
		"steps": []any{
			map[string]any{"name": "one"},
			"stray string",
			map[string]any{"name": "two"},
		},
	}
	steps := rec.List("steps")
	if len(steps) != 2 {
		t.Fatalf("want 2 steps, got %d", len(steps))
	}
	if steps[1].String("name") != "two" {
		t.Fatalf("order lost: %v", steps)
	}
}
