// Package password provides one-way credential hashing.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher abstracts one-way password hashing so the usecase layer can be
// tested without paying the bcrypt cost.
type Hasher interface {
	// Hash produces a salted one-way hash of the plaintext.
	Hash(plaintext string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	Check(plaintext, hash string) bool
}

// bcryptHasher implements Hasher with bcrypt at the default cost.
type bcryptHasher struct{}

// NewBcryptHasher creates a bcrypt-backed Hasher.
func NewBcryptHasher() Hasher {
	return &bcryptHasher{}
}

// Hash generates a salted bcrypt hash. bcrypt handles salt generation
// itself; the plaintext is never logged or stored.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Check compares a plaintext password against a bcrypt hash.
func (h *bcryptHasher) Check(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
