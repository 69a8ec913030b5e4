package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	profileID string
	err       error
}

func (s stubVerifier) Verify(string) (string, error) {
	return s.profileID, s.err
}

func TestAuthMiddleware(t *testing.T) {
	var gotProfile string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotProfile, _ = ProfileFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{profileID: "p1"})(next)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{err: errors.New("bad")})(next)
		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error": "invalid bearer token"}`, rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{profileID: "p1"})(next)
		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.Header.Set("Authorization", "Bearer ok")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "p1", gotProfile)
	})
}
