package jsonld

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeRequired    = "required"    // hard error: a required field is missing
	CodeRecommended = "recommended" // warning: a recommended field is missing
	CodeInvalidURL  = "invalid_url"
	CodeInvalidDate = "invalid_date"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the Record (for example: /questions/2/answer).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints ("set to 0 for free courses").
	// Params carries structured parameters (e.g. {"field": "Business name"})
	// for i18n and observability.
	Params map[string]string
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages flattens the issues to their human-readable messages, in order.
func (iss Issues) Messages() []string {
	if len(iss) == 0 {
		return nil
	}
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Message)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
