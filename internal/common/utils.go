package common

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned by ParseTime for values it cannot read.
var ErrInvalidTime = errors.New("invalid time format; use RFC3339, YYYY-MM-DD or unix seconds")

// ParseTime tries to parse RFC3339, a plain date in loc, or Unix seconds.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, ErrInvalidTime
}
