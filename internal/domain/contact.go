package domain

import (
	"net/mail"
	"regexp"
	"strings"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// IsPhoneNumber reports whether s is a ten digit phone number.
func IsPhoneNumber(s string) bool {
	return phoneNumberPattern.MatchString(s)
}

// IsEmail reports whether s is a bare email address such as "jane@example.com".
// Display-name forms ("Jane <jane@example.com>") are rejected.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s, "@")
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are used as user identifiers, so every lookup goes through it.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
