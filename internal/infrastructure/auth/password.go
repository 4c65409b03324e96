// Package auth implements credential hashing for the account store.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hasher produces the hex-encoded digest persisted for each
// account. SHA-256 is deterministic, so stored digests compare
// bit-for-bit across launches and against pre-existing store files.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash returns the hex-encoded SHA-256 digest of password.
func (h *SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
