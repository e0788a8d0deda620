package validator

import (
	"regexp"
	"unicode"
)

// Username length bounds
const (
	MinUsernameLen = 3
	MaxUsernameLen = 30
)

// MinPasswordLen is the minimum accepted password length
const MinPasswordLen = 8

// local@domain with at least one dot in the domain part
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether candidate matches a standard email grammar.
func IsValidEmail(candidate string) bool {
	return emailPattern.MatchString(candidate)
}

// ValidateUsername returns a human-readable problem with the username, or
// an empty string if it is acceptable.
func ValidateUsername(candidate string) string {
	n := len([]rune(candidate))
	if n < MinUsernameLen {
		return "username must be at least 3 characters"
	}
	if n > MaxUsernameLen {
		return "username must be at most 30 characters"
	}
	return ""
}

// ValidatePassword returns a human-readable problem with the password, or
// an empty string if it meets the policy: at least 8 characters with at
// least one letter and one digit.
func ValidatePassword(candidate string) string {
	if len(candidate) < MinPasswordLen {
		return "password must be at least 8 characters"
	}
	var hasLetter, hasDigit bool
	for _, c := range candidate {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasLetter {
		return "password must contain at least one letter"
	}
	if !hasDigit {
		return "password must contain at least one digit"
	}
	return ""
}
