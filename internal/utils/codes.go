package utils

import (
	"crypto/rand"
	"fmt"
)

// BookingCodeLength is the length of request and reservation codes.
const BookingCodeLength = 8

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBookingCode generates a random uppercase alphanumeric code.
// Uniqueness is the caller's responsibility (checked against the store and
// regenerated on collision).
func GenerateBookingCode(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i, b := range bytes {
		bytes[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(bytes), nil
}
