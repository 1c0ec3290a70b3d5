// Package codec normalizes scalar wire formats that arrive in several
// user-facing shapes into the single canonical form schema.org expects.
package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration converts a video duration into ISO-8601 form. Accepted inputs:
//
//	"PT1M30S"  already ISO-8601, returned as-is
//	"1:05:30"  H:MM:SS
//	"5:30"     MM:SS
//	"330"      total seconds
//
// For bare seconds, zero components above the lowest populated unit are
// omitted, but the seconds component is always emitted when both hours and
// minutes are zero: a zero-length duration is "PT0S", never empty.
func Duration(raw string) string {
	d := strings.TrimSpace(raw)
	if d == "" {
		return ""
	}
	if strings.HasPrefix(d, "PT") {
		return d
	}

	if strings.Contains(d, ":") {
		parts := strings.Split(d, ":")
		nums := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err == nil && n >= 0 {
				nums[i] = n
			}
		}
		switch len(nums) {
		case 2:
			return fmt.Sprintf("PT%dM%dS", nums[0], nums[1])
		case 3:
			return fmt.Sprintf("PT%dH%dM%dS", nums[0], nums[1], nums[2])
		}
		// Any other part count falls through to the loose integer parse.
	}

	total := leadingInt(d)
	if total > 0 {
		hours := total / 3600
		minutes := (total % 3600) / 60
		seconds := total % 60

		b := &strings.Builder{}
		b.WriteString("PT")
		if hours > 0 {
			fmt.Fprintf(b, "%dH", hours)
		}
		if minutes > 0 {
			fmt.Fprintf(b, "%dM", minutes)
		}
		if seconds > 0 || (hours == 0 && minutes == 0) {
			fmt.Fprintf(b, "%dS", seconds)
		}
		return b.String()
	}

	return "PT0S"
}

// leadingInt reads the decimal digits at the front of the string, the way a
// loose numeric cast would: "12abc" is 12, "abc" is -1.
func leadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return -1
	}
	return n
}
