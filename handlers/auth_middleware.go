package handlers

import (
	"context"
	"net/http"
	"strings"

	"portfolioapi/utils"
)

type contextKey string

const claimsContextKey contextKey = "tokenClaims"

// AuthenticateAdmin guards an admin route with a bearer token check.
// A missing token is 401, a bad or expired one is 403; on success the
// decoded claims are attached to the request context.
func AuthenticateAdmin(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Missing bearer token, please log in",
			})
			return
		}

		claims, err := utils.VerifyToken(secret, token)
		if err != nil {
			writeJSON(w, http.StatusForbidden, ApiResponse{
				Success: false,
				Message: "Invalid token",
			})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the claims attached by AuthenticateAdmin.
func ClaimsFromContext(r *http.Request) (*utils.TokenClaims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*utils.TokenClaims)
	return claims, ok
}
