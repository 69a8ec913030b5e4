// Package client talks to the sitedesk REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/keelson/sitedesk/internal/domain/account"
	"github.com/keelson/sitedesk/internal/session"
)

// APIError is a non-2xx response from the server, carrying the decoded
// error envelope when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}

// Client issues requests against a fixed base URL. Every request reads
// the current session token and attaches it as a bearer credential when
// present; no token means the request goes out unauthenticated. There is
// no retry and no caching; one request per call.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

// New creates a Client. baseURL should include the /api prefix.
func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: store,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Get fetches a collection or single resource into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post creates a resource and decodes the echoed row into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put updates a resource and decodes the echoed row into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete removes a resource.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// LoginResult is the successful login response.
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	User        account.Profile `json:"user"`
}

// Login authenticates and persists the returned token into the session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	if err := c.session.Save(result.AccessToken); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	return c.do(ctx, http.MethodPost, "/register", map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}, nil)
}

// Logout clears the persisted session token.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// Authenticated reports whether a session token is present.
func (c *Client) Authenticated() bool {
	_, ok := c.session.Token()
	return ok
}

// FetchList loads a whole collection from an endpoint such as "projects".
func FetchList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var items []T
	if err := c.Get(ctx, "/"+endpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem posts fields to a collection endpoint and returns the row
// the server persisted.
func CreateItem[T any](ctx context.Context, c *Client, endpoint string, fields any) (T, error) {
	var item T
	err := c.Post(ctx, "/"+endpoint, fields, &item)
	return item, err
}

// UpdateItem puts fields to a single resource and returns the stored row.
func UpdateItem[T any](ctx context.Context, c *Client, endpoint, id string, fields any) (T, error) {
	var item T
	err := c.Put(ctx, "/"+endpoint+"/"+id, fields, &item)
	return item, err
}

// DeleteItem removes a single resource.
func DeleteItem(ctx context.Context, c *Client, endpoint, id string) error {
	return c.Delete(ctx, "/"+endpoint+"/"+id)
}
