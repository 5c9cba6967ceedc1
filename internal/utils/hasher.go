package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash generates a SHA-256 hash of the input string
func Hash(input string) string {
	hasher := sha256.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Fingerprint returns a short hash of s, used to correlate log lines about a
// claim without logging the claim text itself.
func Fingerprint(s string) string {
	return Hash(s)[:12]
}
