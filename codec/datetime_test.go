package codec_test

import (
	"testing"

	"github.com/seoforge/jsonld/codec"
)

func TestDateTime(t *testing.T) {
	cases := []struct {
		date  string
		clock string
		want  string
	}{
		{"2026-03-15", "", "2026-03-15"},
		{"2026/03/15", "", "2026-03-15"},
		{"03/15/2026", "", "2026-03-15"},
		{"March 15, 2026", "", "2026-03-15"},
		{"2026-03-15", "19:30", "2026-03-15T19:30:00Z"},
		{"2026-03-15", "7:30 PM", "2026-03-15T19:30:00Z"},
		{"2026-03-15", "19:30:45", "2026-03-15T19:30:45Z"},
		{"2026-03-15", "not a time", "2026-03-15"},
		{"sometime next week", "", "sometime next week"},
		{"sometime next week", "19:30", "sometime next week"},
		{"", "19:30", ""},
		{"  2026-03-15  ", "", "2026-03-15"},
	}
	for _, tc := range cases {
		if got := codec.DateTime(tc.date, tc.clock); got != tc.want {
			t.Fatalf("DateTime(%q, %q) = %q, want %q", tc.date, tc.clock, got, tc.want)
		}
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-03-15", "2026-03-15"},
		{"Jan 2, 2026", "2026-01-02"},
		{"whenever", "whenever"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := codec.Date(tc.in); got != tc.want {
			t.Fatalf("Date(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
