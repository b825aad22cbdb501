package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/types"
)

// UserFileStore persists the whole user directory as a single JSON file.
// Every mutation reads and rewrites the entire list; the record count is small
// enough that this stays cheap. The mutex serializes the read-modify-write
// cycle so concurrent mutations cannot lose updates.
type UserFileStore struct {
	log  *logger.Logger
	path string

	mu sync.Mutex
}

func NewUserFileStore(log *logger.Logger, path string) *UserFileStore {
	return &UserFileStore{
		log:  log.With("store", "UserFileStore"),
		path: path,
	}
}

// Load returns every user on file. A missing file means an empty directory.
func (s *UserFileStore) Load() ([]types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Update applies fn to the full user list and rewrites the file with the
// returned list. If fn errors, nothing is written.
func (s *UserFileStore) Update(fn func(users []types.User) ([]types.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}
	next, err := fn(users)
	if err != nil {
		return err
	}
	return s.saveLocked(next)
}

func (s *UserFileStore) loadLocked() ([]types.User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []types.User{}, nil
		}
		return nil, fmt.Errorf("read user file: %w", err)
	}
	var users []types.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse user file: %w", err)
	}
	return users, nil
}

func (s *UserFileStore) saveLocked(users []types.User) error {
	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user file: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create user file dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write user file: %w", err)
	}
	return nil
}
