package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseBusinessDate parses a YYYY-MM-DD calendar date string.
func ParseBusinessDate(dateString string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(dateString))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q (want YYYY-MM-DD)", ErrorInvalidInput, dateString)
	}
	return d, nil
}

// ConvertToDate truncates a timestamp to the calendar date in the given timezone.
func ConvertToDate(t time.Time, timezone string) (time.Time, error) {
	if timezone == "" {
		timezone = "Europe/Istanbul"
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return t, err
	}
	localTime := t.In(location)
	dateOnly := time.Date(localTime.Year(), localTime.Month(), localTime.Day(), 0, 0, 0, 0, location)
	return dateOnly, nil
}

// ISOWeekday returns the weekday with ISO numbering, Monday=1 .. Sunday=7.
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func IsWeekend(date time.Time) bool {
	wd := ISOWeekday(date)
	return wd == 6 || wd == 7
}

// returns slice removing duplicate elements
func UniqueSlice[T comparable](slice []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, elm := range slice {
		if _, ok := inResult[elm]; !ok {
			inResult[elm] = true
			result = append(result, elm)
		}
	}
	return result
}
