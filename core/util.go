package core

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by every date field.
const DateLayout = "2006-01-02"

var NowFunc = time.Now // mockable

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Today returns the current calendar date.
func Today() string {
	return NowFunc().Format(DateLayout)
}

// IsDate reports whether s is a well-formed calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// CleanStringPtr cleans the string pointed to by s in place; nil is left untouched.
func CleanStringPtr(s *string, lower ...bool) {
	if s != nil {
		*s = CleanString(*s, lower...)
	}
}

