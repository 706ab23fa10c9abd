// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives password digests from a plaintext and a salt.
// The algorithm stays behind this interface so profiles only ever hold opaque strings.
type PasswordHasher interface {
	// NewSalt returns a fresh random salt.
	NewSalt() (string, error)

	// Hash derives the digest of password under salt.
	Hash(password, salt string) (string, error)

	// Check reports whether password hashes to digest under salt.
	Check(password, salt, digest string) bool
}
