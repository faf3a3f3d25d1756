package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from the plaintext password.
// The cost is bcrypt.DefaultCost (10).
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt digest.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
