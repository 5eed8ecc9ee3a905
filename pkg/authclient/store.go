package authclient

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// TokenStore persists the session token between runs. Load returns ("", nil)
// when no token is stored.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// MemoryStore keeps the token in memory, for tests and throwaway sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileStore keeps the token in a file readable only by the owner.
type FileStore struct {
	Path string
}

func (s *FileStore) Save(token string) error {
	if err := os.WriteFile(s.Path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// DualStore fans writes out to every underlying store and reads from the
// first one holding a token, so the token survives losing either location.
type DualStore []TokenStore

func (d DualStore) Save(token string) error {
	for _, s := range d {
		if err := s.Save(token); err != nil {
			return err
		}
	}
	return nil
}

func (d DualStore) Load() (string, error) {
	for _, s := range d {
		tok, err := s.Load()
		if err != nil {
			return "", err
		}
		if tok != "" {
			return tok, nil
		}
	}
	return "", nil
}

func (d DualStore) Clear() error {
	var firstErr error
	for _, s := range d {
		if err := s.Clear(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
