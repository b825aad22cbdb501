package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/types"
)

func testStore(t *testing.T) *UserFileStore {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	return NewUserFileStore(log, filepath.Join(t.TempDir(), "users.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)
	users, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("Load on missing file returned %d users, want 0", len(users))
	}
}

func TestUpdatePersistsWholeList(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "nested", "users.json")
	s := NewUserFileStore(log, path)

	u := types.User{UID: uuid.New(), Name: "Ana", Email: "ana@uni.edu"}
	err = s.Update(func(users []types.User) ([]types.User, error) {
		return append(users, u), nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// A fresh store reading the same file sees the write.
	again := NewUserFileStore(log, path)
	users, err := again.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(users) != 1 || users[0].UID != u.UID || users[0].Email != "ana@uni.edu" {
		t.Fatalf("reloaded users = %+v", users)
	}
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	s := testStore(t)
	if err := s.Update(func(users []types.User) ([]types.User, error) {
		return append(users, types.User{UID: uuid.New()}), nil
	}); err != nil {
		t.Fatalf("seed Update failed: %v", err)
	}

	wantErr := errors.New("validation failed")
	err := s.Update(func(users []types.User) ([]types.User, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Update error = %v, want %v", err, wantErr)
	}

	users, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("failed Update mutated the file: %d users", len(users))
	}
}
