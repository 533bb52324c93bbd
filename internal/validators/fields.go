package validators

import (
	"net/mail"
	"time"
)

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsClockTime reports whether s is an HH:MM time of day.
func IsClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
