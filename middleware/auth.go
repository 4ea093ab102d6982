// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/coinchanger/auth"
)

// TokenParser validates bearer tokens
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type claimsKey struct{}

// WithClaims returns a context carrying the authenticated claims
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by RequireAuth
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header
func BearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(tokens TokenParser, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			slog.Warn("unauthorized request", "path", r.URL.Path, "error", err)
			if errors.Is(err, auth.ErrExpiredToken) {
				ErrorResponse(w, http.StatusUnauthorized, "Token has expired")
				return
			}
			ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next(w, r.WithContext(WithClaims(r.Context(), claims)))
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role
func RequireAdmin(tokens TokenParser, next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFromContext(r.Context())
		if !claims.IsAdmin() {
			slog.Warn("admin access denied", "user_id", claims.UserID, "path", r.URL.Path)
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	})
}
