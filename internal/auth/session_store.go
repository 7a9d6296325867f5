package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/models"
)

// SessionStore persists the current session so it survives restarts.
type SessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

// LocalSessionStore keeps the current session in the device-local store.
type LocalSessionStore struct {
	store KeyValueStore
}

// NewLocalSessionStore returns a SessionStore backed by store.
func NewLocalSessionStore(store KeyValueStore) *LocalSessionStore {
	return &LocalSessionStore{store: store}
}

// Load returns the persisted session or ErrSessionNotFound.
func (s *LocalSessionStore) Load(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.store.GetJSON(ctx, CurrentUserKey, &session)
	if errors.Is(err, localstore.ErrNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Save replaces the persisted session.
func (s *LocalSessionStore) Save(ctx context.Context, session models.Session) error {
	return s.store.SetJSON(ctx, CurrentUserKey, session)
}

// Clear forgets the persisted session.
func (s *LocalSessionStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, CurrentUserKey)
}

// NewInMemorySessionStore returns a SessionStore that lives only as long as the process.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{}
}

// InMemorySessionStore implements SessionStore for tests and local development.
type InMemorySessionStore struct {
	mu      sync.RWMutex
	session *models.Session
}

// Load returns the held session.
func (s *InMemorySessionStore) Load(context.Context) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return *s.session, nil
}

// Save holds session.
func (s *InMemorySessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
	return nil
}

// Clear drops the held session.
func (s *InMemorySessionStore) Clear(context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}

// Has reports whether a session is held. Useful for tests.
func (s *InMemorySessionStore) Has() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}
