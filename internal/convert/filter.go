package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/gorewood/driftwood/internal/dayone"
)

// durationPattern matches relative offsets like "24h", "7d", "2w", "1m".
var durationPattern = regexp.MustCompile(`^(\d+)([hdwm])$`)

// ParseSince parses a since value into a time cutoff.
// Accepts:
//   - Durations: "24h", "48h", "7d", "2w", "1m" (hours, days, weeks, months)
//   - Dates: "2024-01-15" (YYYY-MM-DD format)
//   - Timestamps: RFC3339
//
// Entries created at or after the cutoff pass the filter.
func ParseSince(value string) (time.Time, error) {
	t, err := parseTimeValue(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid since value %q; use a duration (24h, 7d, 2w) or a date (2024-01-15)", value)
	}
	return t, nil
}

// ParseUntil parses an until value into a time cutoff. Same formats as
// ParseSince; date-only values extend to the end of that day so the whole
// day is included.
func ParseUntil(value string) (time.Time, error) {
	cutoff, err := parseTimeValue(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid until value %q; use a duration (24h, 7d, 2w) or a date (2024-01-15)", value)
	}
	if len(value) == 10 && value[4] == '-' && value[7] == '-' {
		cutoff = cutoff.Add(24*time.Hour - time.Second)
	}
	return cutoff, nil
}

// parseTimeValue parses a time value (duration, date or timestamp).
func parseTimeValue(value string) (time.Time, error) {
	if matches := durationPattern.FindStringSubmatch(value); len(matches) == 3 {
		return parseDuration(matches[1], matches[2])
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time value: %s", value)
}

// parseDuration converts a numeric value and unit to a cutoff in the past.
func parseDuration(numStr, unit string) (time.Time, error) {
	num, err := strconv.Atoi(numStr)
	if err != nil || num <= 0 {
		return time.Time{}, fmt.Errorf("invalid duration number: %s", numStr)
	}

	now := time.Now().UTC()

	switch unit {
	case "h":
		return now.Add(-time.Duration(num) * time.Hour), nil
	case "d":
		return now.AddDate(0, 0, -num), nil
	case "w":
		return now.AddDate(0, 0, -num*7), nil
	case "m":
		return now.AddDate(0, -num, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown duration unit: %s", unit)
	}
}

// FilterSpec selects entries by creation time and tags. The zero value
// matches everything.
type FilterSpec struct {
	Since time.Time
	Until time.Time
	Tags  []string
}

// Empty reports whether the spec matches every entry.
func (spec FilterSpec) Empty() bool {
	return spec.Since.IsZero() && spec.Until.IsZero() && len(spec.Tags) == 0
}

// Filter returns an Options.Filter for the spec, or nil when the spec is
// empty so unfiltered runs skip the per-entry check. Tag matching compares
// normalized forms, so "Trip Notes" and "trip-notes" select the same
// entries.
func (spec FilterSpec) Filter() func(*dayone.Entry) bool {
	if spec.Empty() {
		return nil
	}

	want := make(map[string]bool, len(spec.Tags))
	for _, tag := range spec.Tags {
		if n := NormalizeTag(tag); n != "" {
			want[n] = true
		}
	}

	return func(entry *dayone.Entry) bool {
		if !spec.Since.IsZero() && entry.CreationDate.Before(spec.Since) {
			return false
		}
		if !spec.Until.IsZero() && entry.CreationDate.After(spec.Until) {
			return false
		}
		if len(want) == 0 {
			return true
		}
		for _, tag := range entry.Tags {
			if want[NormalizeTag(tag)] {
				return true
			}
		}
		return false
	}
}
