package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword returns a bcrypt hash of the plaintext password. The salt is
// generated per call, so equal inputs produce different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. A mismatch is a normal false, not an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
