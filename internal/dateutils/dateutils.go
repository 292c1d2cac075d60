// Package dateutils provides the date parsing and formatting helpers shared by
// the loader, analyzer and export code.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	// DateLayoutMatch is the day-first layout match files use (D/M/YYYY).
	DateLayoutMatch = "2/1/2006"
	// DateLayoutMatchPadded accepts zero-padded day and month (DD/MM/YYYY).
	DateLayoutMatchPadded = "02/01/2006"
	// DateLayoutISO is used for normalized output.
	DateLayoutISO = "2006-01-02"
)

// matchLayouts are the only layouts accepted for match dates. The input format
// is day-first; anything else is a parse error, not a guess.
var matchLayouts = []string{
	DateLayoutMatch,
	DateLayoutMatchPadded,
}

// ParseMatchDate parses a day/month/4-digit-year date string.
func ParseMatchDate(dateStr string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	for _, layout := range matchLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToMatchFormat formats a time.Time the way match files write dates (D/M/YYYY).
func ToMatchFormat(date time.Time) string {
	return date.Format(DateLayoutMatch)
}

// SameDay reports whether two dates fall on the same calendar day, ignoring
// any time component.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
