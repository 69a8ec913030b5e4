package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelson/sitedesk/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	return New(ts.URL+"/api", store), store
}

func TestBearerAttachment(t *testing.T) {
	var gotAuth string
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]string{})
	}))

	// No token yet: the request goes out unauthenticated.
	require.NoError(t, c.Get(context.Background(), "/projects", nil))
	require.Empty(t, gotAuth)

	require.NoError(t, store.Save("tok123"))
	require.NoError(t, c.Get(context.Background(), "/projects", nil))
	require.Equal(t, "Bearer tok123", gotAuth)
}

func TestLoginPersistsToken(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok456",
			"user":         map[string]string{"id": "p1", "email": "pm@sitedesk.test"},
		})
	}))

	result, err := c.Login(context.Background(), "pm@sitedesk.test", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "tok456", result.AccessToken)
	require.Equal(t, "pm@sitedesk.test", result.User.Email)

	token, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, "tok456", token)
	require.True(t, c.Authenticated())
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Email address already in use"})
	}))

	err := c.Register(context.Background(), "pm@sitedesk.test", "x", "Dana")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "Email address already in use", apiErr.Message)
	require.Equal(t, "Email address already in use", apiErr.Error())
}

func TestDeleteIssuesRequestAndSurfacesErrors(t *testing.T) {
	var gotMethod, gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if r.URL.Path == "/api/bids/missing" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Bid not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bid deleted successfully"})
	}))

	require.NoError(t, c.Delete(context.Background(), "/bids/b1"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/api/bids/b1", gotPath)

	err := c.Delete(context.Background(), "/bids/missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Bid not found", apiErr.Message)
}

func TestLogoutClearsSession(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.NoError(t, store.Save("tok"))
	require.True(t, c.Authenticated())
	require.NoError(t, c.Logout())
	require.False(t, c.Authenticated())
}
