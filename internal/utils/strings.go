package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhoneNumber checks if a string is a plausible phone number
func IsValidPhoneNumber(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return phoneRegex.MatchString(phone)
}

// ValidatePassword enforces the account password policy: at least 8
// characters with at least one letter and one digit.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "password must be at least 8 characters"
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return false, "password must contain at least one letter"
	}
	if !hasDigit {
		return false, "password must contain at least one digit"
	}
	return true, ""
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeString collapses whitespace and strips control characters.
func SanitizeString(s string) string {
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
