// Package cryptox wraps password hashing for the server's auth flow.
package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash from the given plaintext password.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
}

// CheckPassword reports whether candidate matches the stored bcrypt hash.
func CheckPassword(hash, candidate []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, candidate) == nil
}
