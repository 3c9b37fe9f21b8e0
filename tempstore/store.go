// Package tempstore backs the temporary auth endpoints with an injectable
// user store. The store has an explicit lifecycle and is passed to its
// consumers instead of living in a process-wide map.
package tempstore

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned when a signup reuses an existing email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrNotFound is returned when no temp user matches the email.
	ErrNotFound = errors.New("temp user not found")
)

// TempUser is a throwaway account used for testing auth flows.
type TempUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
}

// Store is the temp-auth user store contract.
type Store interface {
	Put(ctx context.Context, user *TempUser) error
	GetByEmail(ctx context.Context, email string) (*TempUser, error)
}

// MemoryStore is an in-process Store for development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*TempUser
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*TempUser)}
}

// Put stores the user, failing when the email is already taken.
func (s *MemoryStore) Put(ctx context.Context, user *TempUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return ErrEmailTaken
	}
	s.users[user.Email] = user
	return nil
}

// GetByEmail looks a user up by email.
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*TempUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}
