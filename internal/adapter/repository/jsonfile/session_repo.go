package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SessionRepository keeps the resume marker in a small side file
// holding just the current username.
type SessionRepository struct {
	path string
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(path string) *SessionRepository {
	return &SessionRepository{path: path}
}

// Current returns the marked username. A missing file means logged out.
func (r *SessionRepository) Current(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session marker: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write records username as the resume marker.
func (r *SessionRepository) Write(ctx context.Context, username string) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, []byte(username+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}
	return nil
}

// Clear removes the resume marker. Clearing an absent marker is fine.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session marker: %w", err)
	}
	return nil
}
