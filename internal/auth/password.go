package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

var (
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasLower = regexp.MustCompile(`[a-z]`)
	hasDigit = regexp.MustCompile(`[0-9]`)
)

// ValidatePassword applies the registration password policy. This is a UX
// gate only: the hash boundary below accepts any input.
func ValidatePassword(password string) error {
	switch {
	case len(password) < 8:
		return errors.New("Password must be at least 8 characters long")
	case !hasUpper.MatchString(password):
		return errors.New("Password must contain at least one uppercase letter")
	case !hasLower.MatchString(password):
		return errors.New("Password must contain at least one lowercase letter")
	case !hasDigit.MatchString(password):
		return errors.New("Password must contain at least one number")
	}
	return nil
}

// HashPassword produces the opaque digest stored in users.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored digest.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
