package jsonld

// Clean returns a copy of the document with empty values stripped
// recursively. A value is empty when it is nil, an empty string, false, or
// an object/list that is empty after its own children were stripped. The
// marker keys @context and @type are never removed, and the literal zeros 0
// and "0" are preserved: a price of zero is data, not absence. Note that
// boolean false is treated as absence, mirroring the behavior callers rely
// on today.
//
// Clean is idempotent: cleaning an already-clean document is a no-op.
func (d Document) Clean() Document {
	if d == nil {
		return nil
	}
	return Document(cleanMap(d))
}

func cleanMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		cv := cleanValue(v)
		if k == "@context" || k == "@type" {
			out[k] = cv
			continue
		}
		if isEmptyValue(cv) {
			continue
		}
		out[k] = cv
	}
	return out
}

func cleanValue(v any) any {
	switch t := v.(type) {
	case Document:
		return cleanMap(t)
	case Record:
		return cleanMap(t)
	case map[string]any:
		return cleanMap(t)
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			ci := cleanValue(item)
			if isEmptyValue(ci) {
				continue
			}
			out = append(out, ci)
		}
		return out
	default:
		return v
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case map[string]any:
		return len(t) == 0
	case Document:
		return len(t) == 0
	case Record:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		// Numbers are never empty; zero is meaningful.
		return false
	}
}
