// Package session persists the bearer token between invocations. It is
// the terminal analog of the browser's cookie jar: a single token file,
// written on login, read on every API call, removed on logout or when
// the server rejects the session.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotLoggedIn indicates that no session token is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// Store reads and writes the token file.
type Store struct {
	path string
}

// NewStore creates a token store at the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the token file location.
func (s *Store) Path() string {
	return s.path
}

// Save writes the token, creating the parent directory if needed. The
// file is user-readable only.
func (s *Store) Save(token string) error {
	if token == "" {
		return errors.New("refusing to save empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Token returns the stored token. A missing token file yields an empty
// token and no error; requests made without a token get a 401 from the
// server, which is handled like any other expired session.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// LoggedIn reports whether a non-empty token is stored.
func (s *Store) LoggedIn() bool {
	token, err := s.Token()
	return err == nil && token != ""
}

// Clear removes the token file. Clearing an already-empty session is
// not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}
