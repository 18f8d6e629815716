// Package hash fingerprints evaluation inputs.
//
// A fingerprint is the SHA-256 of the canonical encoding of a mission, its
// flight schedule, and the evaluation parameters. Stored reports carry the
// fingerprint so identical inputs can be recognised across runs. The package
// provides both a real implementation and a fake one for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for fingerprinting.
type Hasher interface {
	// Fingerprint computes the hex digest of data.
	Fingerprint(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Fingerprint computes the SHA-256 hex digest of data.
func (h *SHA256Hasher) Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with a fixed digest for testing.
type FakeHasher struct {
	digest string
}

// NewFakeHasher creates a new FakeHasher returning "fakehash".
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{digest: "fakehash"}
}

// SetDigest sets the digest returned for every input.
func (h *FakeHasher) SetDigest(digest string) {
	h.digest = digest
}

// Fingerprint returns the predetermined digest.
func (h *FakeHasher) Fingerprint(data []byte) string {
	return h.digest
}
