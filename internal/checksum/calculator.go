package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes a fingerprint of raw content.
type Calculator interface {
	CalculateRaw(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw returns the lowercase hex SHA-256 of content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
