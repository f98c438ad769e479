package http

import (
	"context"
	"net/http"
	"strings"

	"carrental-backend/internal/security"
)

type contextKey string

const staffIDKey contextKey = "staff_id"

// AuthMiddleware requires a valid staff Bearer token and stashes the staff id
// in the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token", Kind: "unauthorized"})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Kind: "unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey, claims.StaffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// staffIDFromContext returns the authenticated staff id, or 0 when the
// request did not pass the auth middleware.
func staffIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(staffIDKey).(int64)
	return id
}
