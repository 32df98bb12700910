// Package idgen generates cryptographically random identifiers and filenames.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureID returns "<prefix>_<length random chars>" drawn from the
// lowercase alphanumeric alphabet using crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("prefix is required")
	}
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}

	return prefix + "_" + string(buf), nil
}

// RandomHex returns the hex encoding of n random bytes (2n characters).
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidateIDFormat reports whether id matches "<prefix>_<lowercase alnum>".
func ValidateIDFormat(id, prefix string) bool {
	want := prefix + "_"
	if len(id) <= len(want) || id[:len(want)] != want {
		return false
	}
	for _, char := range id[len(want):] {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
