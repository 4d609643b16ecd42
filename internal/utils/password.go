package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the fixed bcrypt cost factor used for all password
// hashes. Raising it invalidates nothing (old hashes keep their embedded
// cost) but slows down new registrations.
const PasswordHashCost = 10

// HashPassword derives a salted bcrypt hash from the given plaintext
// password using [PasswordHashCost]. The salt is generated internally by
// bcrypt and embedded in the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored bcrypt hash. A nil error means the password is correct.
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
