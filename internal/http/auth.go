package httpapi

import (
	"context"
	"net/http"
	"strings"

	"ciencia-backend-go/internal/services"
)

type contextKey string

const ctxAdminID contextKey = "adminID"

// WithAuth only admits access tokens issued to administrators; there is no
// other authenticated principal in this system.
func WithAuth(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			token, claims, err := tokens.ParseToken(tokenStr)
			if err != nil || !token.Valid || claims["typ"] != "access" {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			adminID, ok := services.SubjectID(claims)
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			ctx := context.WithValue(r.Context(), ctxAdminID, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CurrentAdminID(r *http.Request) int64 {
	if value, ok := r.Context().Value(ctxAdminID).(int64); ok {
		return value
	}
	return 0
}
