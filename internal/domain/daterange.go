package domain

import (
	"fmt"
	"time"
)

// DateRange is an optional [From, To] window over record creation times.
// Both bounds are inclusive; a nil bound leaves that side open. The same
// predicate filters on the server (store layer) and on the client (feed
// cache) so the two can never drift apart.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether no bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// dateLayouts are the accepted formats for fromDate/toDate values:
// a bare date (as produced by a date picker) or a full RFC 3339 timestamp.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDateRange builds a DateRange from raw query-string values.
// Empty strings leave the corresponding bound open.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		t, err := parseDate(from)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid fromDate: %w", err)
		}
		r.From = &t
	}
	if to != "" {
		t, err := parseDate(to)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid toDate: %w", err)
		}
		r.To = &t
	}
	return r, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
