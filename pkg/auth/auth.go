package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor applied to all stored passwords.
const HashCost = 12

// maxPasswordBytes is bcrypt's input limit. Longer plaintexts are
// truncated rather than rejected so any input length is accepted.
const maxPasswordBytes = 72

// HashPassword returns a salted bcrypt digest of the plaintext password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(password), HashCost)
	return string(digest), err
}

// CheckPassword reports whether the plaintext password matches the stored
// digest. The comparison inside bcrypt is constant-time.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncate(password)) == nil
}

// truncate caps the plaintext at bcrypt's 72-byte limit.
// GenerateFromPassword returns ErrPasswordTooLong past that, so the cap
// has to happen here, and identically for hashing and verification.
func truncate(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}
	return raw
}
