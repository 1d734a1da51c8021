package service

import (
	"sort"

	"github.com/jackc/pgx/v5/pgtype"
)

// UnavailableDates projects approved booking rows to a sorted, deduplicated
// set of date-only keys. Pending bookings never appear here: only approval
// blocks a date.
func UnavailableDates(dates []pgtype.Date) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, d := range dates {
		if !d.Valid {
			continue
		}
		key := d.Time.Format("2006-01-02")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func IsDateUnavailable(date string, unavailable []string) bool {
	for _, d := range unavailable {
		if d == date {
			return true
		}
	}
	return false
}
