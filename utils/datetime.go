package utils

import (
	"fmt"
	"time"
)

const (
	// BookingDateLayout is the wire format for booking dates
	BookingDateLayout = "2006-01-02"
	// BookingTimeLayout is the wire format for booking times
	BookingTimeLayout = "15:04"
)

// ValidationError represents a malformed or missing form field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseBookingDate parses a "YYYY-MM-DD" form value into a calendar date
func ParseBookingDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, &ValidationError{Field: "date", Message: "date is required"}
	}
	parsed, err := time.Parse(BookingDateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return parsed, nil
}

// ParseBookingTime parses an "HH:MM" form value and returns it normalized
func ParseBookingTime(value string) (string, error) {
	if value == "" {
		return "", &ValidationError{Field: "time", Message: "time is required"}
	}
	parsed, err := time.Parse(BookingTimeLayout, value)
	if err != nil {
		return "", &ValidationError{Field: "time", Message: fmt.Sprintf("invalid time %q, expected HH:MM", value)}
	}
	return parsed.Format(BookingTimeLayout), nil
}

// RequireField returns a ValidationError when a required form value is empty
func RequireField(name, value string) error {
	if value == "" {
		return &ValidationError{Field: name, Message: name + " is required"}
	}
	return nil
}
