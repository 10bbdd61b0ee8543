package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when none is configured.
const DefaultPasswordHashCost = 8

// HashPassword returns the salted bcrypt hash of plain using the given cost.
// A cost outside bcrypt's accepted range falls back to [DefaultPasswordHashCost].
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// The comparison is done by bcrypt itself and runs in constant time.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
