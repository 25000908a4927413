package credentials

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMaxAge is how long a password stays valid before login demands a reset.
const PasswordMaxAge = 60 * 24 * time.Hour

var (
	// ErrPasswordMismatch is returned when the plaintext does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrCredentialFault is returned when the hashing machinery itself fails,
	// e.g. a malformed stored hash. It must never be read as a mismatch.
	ErrCredentialFault = errors.New("credential fault")
)

// HashPassword hashes a plaintext password with bcrypt. Each call embeds a
// fresh salt, so hashing the same input twice yields different outputs.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredentialFault, err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// It returns nil on match, ErrPasswordMismatch on mismatch, and
// ErrCredentialFault for any other bcrypt failure.
func VerifyPassword(plain, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %v", ErrCredentialFault, err)
	}
}

// PasswordExpired reports whether a password set at lastChange has aged past
// PasswordMaxAge.
func PasswordExpired(lastChange time.Time) bool {
	return time.Since(lastChange) > PasswordMaxAge
}
