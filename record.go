package jsonld

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the field as a trimmed string. Numeric values are rendered
// in their natural form so a numeric zero survives as "0"; anything else
// yields "".
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// Has reports whether the field carries a usable value: present, non-nil and
// not an empty string. Numeric zero and "0" count as present; a price of 0
// is data, not absence.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	if l, isList := v.([]any); isList {
		return len(l) > 0
	}
	return true
}

// Value returns the raw field value, nil when absent.
func (r Record) Value(key string) any { return r[key] }

// Float returns the field as a float64 when it parses as one.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int returns the field as a non-negative int, zero when absent or
// unparseable.
func (r Record) Int(key string) int {
	f, ok := r.Float(key)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

// List returns the field as an ordered list of sub-records. Entries that are
// not objects are skipped.
func (r Record) List(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		switch m := item.(type) {
		case map[string]any:
			out = append(out, Record(m))
		case Record:
			out = append(out, m)
		}
	}
	return out
}

// Strings returns the field as a list of trimmed strings, dropping empties.
func (r Record) Strings(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s := strings.TrimSpace(fmt.Sprint(item))
		if s != "" && s != "<nil>" {
			out = append(out, s)
		}
	}
	return out
}

// StringOrList is the tagged union for fields accepted either as a single
// string or as a list of strings (opening hours, employment type, skills).
// The relevant generator resolves it once at the top instead of scattering
// runtime type switches.
type StringOrList struct {
	Str  string
	List []string
}

// IsZero reports whether neither arm carries data.
func (u StringOrList) IsZero() bool { return u.Str == "" && len(u.List) == 0 }

// Any returns the union as a JSON-encodable value: the string arm, the list
// arm, or nil when empty.
func (u StringOrList) Any() any {
	switch {
	case len(u.List) > 0:
		items := make([]any, len(u.List))
		for i, s := range u.List {
			items[i] = s
		}
		return items
	case u.Str != "":
		return u.Str
	default:
		return nil
	}
}

// StringOrList resolves a field into the union form.
func (r Record) StringOrList(key string) StringOrList {
	if list := r.Strings(key); len(list) > 0 {
		return StringOrList{List: list}
	}
	return StringOrList{Str: r.String(key)}
}
