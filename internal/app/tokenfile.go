package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken means no session is saved locally; the user has to log in.
var ErrNoToken = errors.New("not logged in")

// TokenFile keeps the current session token on disk, readable only by the
// owning user.
type TokenFile struct {
	path string
}

// NewTokenFile uses the given path, or ~/.passvault/token when empty.
func NewTokenFile(path string) (*TokenFile, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".passvault", "token")
	}
	return &TokenFile{path: path}, nil
}

func (t *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(t.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (t *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Clear removes the saved token; clearing an absent file succeeds.
func (t *TokenFile) Clear() error {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
