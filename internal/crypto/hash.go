package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashFailed      = errors.New("password hashing failed")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// HashPassword hashes a password using bcrypt with the default cost.
// bcrypt embeds a random salt in the encoded hash and caps input at 72 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", ErrHashFailed
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
