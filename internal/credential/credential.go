// Package credential owns hashing and verification of passwords.
// It has no storage and no side effects beyond the transform itself.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash produces a salted one-way hash of password. The output differs
// between calls for the same input; any output verifies against it.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password was the input that produced hash.
// bcrypt's comparison does not leak prefix-match timing.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
