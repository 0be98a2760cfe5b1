package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// PasswordPolicy checks a candidate password and returns the list of
// violated rules, empty when the password is acceptable.
type PasswordPolicy func(password string) []string

// returns the standard policy: minimum length, at least one lowercase
// letter, at least one symbol or punctuation character
func DefaultPasswordPolicy(minLength int) PasswordPolicy {
	return func(password string) []string {
		var issues []string

		if len(password) < minLength {
			issues = append(issues, fmt.Sprintf("password must be at least %d characters long", minLength))
		}

		hasLower := false
		hasSpecial := false

		for _, r := range password {
			if unicode.IsLower(r) {
				hasLower = true
			}

			if unicode.IsSymbol(r) || unicode.IsPunct(r) {
				hasSpecial = true
			}
		}

		if !hasLower {
			issues = append(issues, "password must contain at least one lowercase letter")
		}

		if !hasSpecial {
			issues = append(issues, "password must contain at least one special character")
		}

		return issues
	}
}

// derives a bcrypt hash from the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// verifies the password against a stored bcrypt hash
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
