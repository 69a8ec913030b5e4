// Package session persists the bearer token between dashboard runs.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps the access token in memory and mirrors it to a file so a
// restarted dashboard can resume without logging in again.
type Store struct {
	path  string
	token string
}

// NewStore creates a Store backed by the given file path. An existing
// token file is loaded eagerly; a missing file just means logged out.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	s.token = strings.TrimSpace(string(raw))
	return s, nil
}

// Token returns the saved access token, if any.
func (s *Store) Token() (string, bool) {
	return s.token, s.token != ""
}

// Save stores the token in memory and on disk. The token file is
// created user-readable only.
func (s *Store) Save(token string) error {
	s.token = token

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear forgets the token and removes the file.
func (s *Store) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}
