package util

import (
	"crypto/rand"
	"fmt"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortIDLength is the length of codes returned by GenerateShortID.
const ShortIDLength = 6

// GenerateShortID returns a 6-character alphanumeric string using cryptographic randomness.
func GenerateShortID() (string, error) {
	bytes := make([]byte, ShortIDLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return string(bytes), nil
}

// GenerateUniqueShortID draws short IDs until one is not taken.
// It gives up after maxAttempts draws.
func GenerateUniqueShortID(taken func(string) bool, maxAttempts int) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id, err := GenerateShortID()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("no unused id after %d attempts", maxAttempts)
}
