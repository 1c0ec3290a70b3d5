package codec

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04 pm",
	"3:04pm",
}

// DateTime combines a date and an optional time-of-day into the ISO-8601
// form schema.org wants on startDate/endDate: date-only ("2006-01-02") when
// no time was supplied, full RFC 3339 otherwise. Unparseable input degrades
// to the trimmed raw date string; generation never fails on a bad scalar.
func DateTime(date, clock string) string {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return ""
	}

	d, ok := parseDate(date)
	if !ok {
		return date
	}
	if clock == "" {
		return d.Format("2006-01-02")
	}
	t, ok := parseClock(clock)
	if !ok {
		return d.Format("2006-01-02")
	}
	combined := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return combined.Format(time.RFC3339)
}

// Date normalizes a lone date field to "2006-01-02", degrading to the
// trimmed input when it does not parse.
func Date(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	d, ok := parseDate(raw)
	if !ok {
		return raw
	}
	return d.Format("2006-01-02")
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
