package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is the fallback window for tokens requested
// without an explicit validity.
const DefaultTokenValidity = 15 * time.Minute

// JWT signs and verifies session tokens with a symmetric secret. It is
// constructed once at startup and passed to the services and the
// router; there is no package-level signing state.
type JWT struct {
	tokenAuth *jwtauth.JWTAuth
	accessExp time.Duration
}

func NewJWT(secret []byte, accessExp time.Duration) *JWT {
	return &JWT{
		tokenAuth: jwtauth.New("HS256", secret, nil),
		accessExp: accessExp,
	}
}

// TokenAuth exposes the verifier for the router middleware.
func (j *JWT) TokenAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// AccessValidity is the window for tokens issued at registration and login.
func (j *JWT) AccessValidity() time.Duration {
	return j.accessExp
}

// GenerateToken signs a token for the given subject, expiring after
// the supplied validity. A non-positive validity falls back to
// DefaultTokenValidity.
func (j *JWT) GenerateToken(subject string, validity time.Duration) (string, error) {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(validity).Unix(),
		"iat": now.Unix(),
	}
	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}

// SubjectFromClaims extracts the subject (the user's email) from a
// verified token's claims.
func SubjectFromClaims(claims map[string]interface{}) (string, error) {
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return subject, nil
}
