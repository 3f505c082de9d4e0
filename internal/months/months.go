// Package months centralizes "YYYY-MM" month-key arithmetic. Every component
// that parses, offsets, or compares month keys goes through here so calendar
// edge cases (year rollover, invalid month numbers) are handled in one place.
package months

import (
	"strings"
	"time"
)

// Layout is the month-key format used throughout the engine.
const Layout = "2006-01"

// Parse parses a "YYYY-MM" key into the first day of that month (UTC).
func Parse(month string) (time.Time, error) {
	return time.Parse(Layout, month)
}

// IsValid reports whether month is a well-formed "YYYY-MM" key.
func IsValid(month string) bool {
	_, err := Parse(month)
	return err == nil
}

// Add returns the month key n calendar months after month. n may be negative.
func Add(month string, n int) (string, error) {
	t, err := Parse(month)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, n, 0).Format(Layout), nil
}

// Compare orders two month keys. Lexicographic comparison is chronological
// for well-formed keys; malformed keys are treated as opaque sort keys.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Number returns the calendar month number (1-12), or 0 for malformed keys.
func Number(month string) int {
	t, err := Parse(month)
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// Year returns the calendar year, or 0 for malformed keys.
func Year(month string) int {
	t, err := Parse(month)
	if err != nil {
		return 0
	}
	return t.Year()
}

// Label renders a month key as a short human label ("Jan 2024").
// Malformed keys are returned unchanged so they stay recognizable in output.
func Label(month string) string {
	t, err := Parse(month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}
