package security

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash of the password. The hash
// is one-way; CheckPasswordHash is the only supported comparison.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
