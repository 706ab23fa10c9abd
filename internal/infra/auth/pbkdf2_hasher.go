// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"favorites/config"
	"favorites/internal/domain/service"
	"favorites/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	defaultIterations = 262144
	keyLength         = 64
	saltLength        = 32
)

// pbkdf2Hasher implements service.PasswordHasher with PBKDF2-HMAC-SHA512.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// The iteration count comes from auth.pbkdf2Iterations and falls back to 262144.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := defaultIterations
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PBKDF2Iterations > 0 {
		iterations = cfg.Auth.PBKDF2Iterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// NewSalt returns 32 random bytes, hex encoded.
func (h *pbkdf2Hasher) NewSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	return hex.EncodeToString(buf), nil
}

// Hash derives a 64 byte key and returns it hex encoded.
func (h *pbkdf2Hasher) Hash(password, salt string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	if salt == "" {
		return "", errors.New("salt is empty")
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, keyLength, sha512.New)

	return hex.EncodeToString(key), nil
}

// Check recomputes the digest and compares it in constant time.
func (h *pbkdf2Hasher) Check(password, salt, digest string) bool {
	computed, err := h.Hash(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
