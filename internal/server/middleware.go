package server

import (
	"context"
	"net/http"
	"strings"
)

type profileKey struct{}

// TokenVerifier resolves a profile ID from a bearer token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// ProfileFromContext returns the authenticated profile ID, if present.
func ProfileFromContext(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(profileKey{}).(string)
	return profileID, ok
}

// AuthMiddleware enforces bearer token authentication on resource routes.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			profileID, err := verifier.Verify(token)
			if err != nil || profileID == "" {
				writeError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			ctx := context.WithValue(r.Context(), profileKey{}, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
