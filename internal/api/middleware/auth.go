package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"badgecv_api/internal/common"
	"badgecv_api/internal/common/security"
)

type contextKey string

const SubjectCtxKey contextKey = "subject"

// Authenticator requires a valid bearer token and stores its subject
// (the user's email) on the request context. The router-wide
// jwtauth.Verifier has already parsed the Authorization header by the
// time this runs.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil || token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}

		subject, err := security.SubjectFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), SubjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectFromContext returns the authenticated user's email.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}
