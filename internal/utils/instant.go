package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xzzpig/cronlist/internal/core/errs"
)

// localLayouts are interpreted in the caller's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006-01-02",
	"2006/1/2",
	"20060102",
}

// minEpochMillisDigits keeps short numbers such as a bare year or a compact
// date from being read as milliseconds near 1970. 12 digits start in 1973.
const minEpochMillisDigits = 12

// ParseInstant parses a start or end instant.
// It accepts RFC 3339 (the offset wins over loc), the local layouts above
// (read in loc) and integer Unix milliseconds of at least 12 digits.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", errs.ErrInvalidInput)
	}
	if loc == nil {
		loc = time.UTC
	}

	if len(s) >= minEpochMillisDigits {
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms).In(loc), nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", errs.ErrInvalidInput, s)
}
