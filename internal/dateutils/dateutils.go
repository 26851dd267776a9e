// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// ParseDateString attempts to parse a date string using multiple common
// formats. The advisory service is free to return dates in whatever shape it
// likes, so this parser is deliberately permissive. Returns an error only when
// no known format matches.
func ParseDateString(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	cleanDate := CleanDateString(dateStr)

	formats := []string{
		DateLayoutISO,          // YYYY-MM-DD
		time.RFC3339,           // ISO 8601 with timezone
		"2006-01-02T15:04:05",  // ISO 8601 without timezone
		DateLayoutFull,         // YYYY-MM-DD HH:MM:SS
		"02/01/2006",           // DD/MM/YYYY (European)
		DateLayoutUS,           // MM/DD/YYYY (US format)
		DateLayoutEuropean,     // DD.MM.YYYY
		"02-01-2006",           // DD-MM-YYYY
		"2.1.2006",             // D.M.YYYY
		"January 2, 2006",      // Month D, YYYY
		"2 January 2006",       // D Month YYYY
		"02 Jan 2006",          // DD MMM YYYY
		"Jan 02, 2006",         // MMM DD, YYYY
	}

	for _, format := range formats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToISOTimestamp formats a time.Time value as a full RFC 3339 timestamp.
func ToISOTimestamp(date time.Time) string {
	return date.Format(time.RFC3339)
}

// CleanDateString removes unwanted characters and normalizes a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}
