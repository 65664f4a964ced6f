package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost factor used for all stored password
// hashes. Cost 10 keeps hashing around tens of milliseconds on current
// hardware, enough to resist offline brute force.
const passwordHashCost = 10

// HashPassword derives a salted one-way bcrypt hash from the given plaintext
// password. The salt is generated and embedded by bcrypt itself, so two
// hashes of the same password never match byte-for-byte.
//
// Returns the hash in bcrypt's standard string encoding, or a wrapped error
// if hashing fails (e.g. the password exceeds bcrypt's 72-byte limit).
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret1")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
// The comparison is performed by bcrypt and is safe against timing attacks.
//
// Returns true only when the password matches the hash. Any bcrypt error
// (malformed hash, mismatch) yields false; callers must treat a false result
// as generic invalid credentials and must not distinguish the cause.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
