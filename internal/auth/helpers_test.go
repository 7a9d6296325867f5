package auth

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/models"
)

type memoryKV struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string][]byte)}
}

func (m *memoryKV) GetJSON(_ context.Context, key string, v any) error {
	m.mu.Lock()
	raw, ok := m.values[key]
	m.mu.Unlock()
	if !ok {
		return localstore.ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (m *memoryKV) SetJSON(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

type stubProvider struct {
	mu sync.Mutex

	signUpOut  Outcome
	signUpErr  error
	signInOut  Outcome
	signInErr  error
	signOutErr error
	userErr    error
	user       models.User

	signUpCalls  int
	signInCalls  int
	signOutCalls int
}

func (p *stubProvider) SignUp(context.Context, string, string) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signUpCalls++
	return p.signUpOut, p.signUpErr
}

func (p *stubProvider) SignIn(context.Context, string, string) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signInCalls++
	return p.signInOut, p.signInErr
}

func (p *stubProvider) SignOut(context.Context, models.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signOutCalls++
	return p.signOutErr
}

func (p *stubProvider) CurrentUser(context.Context, models.Session) (models.User, error) {
	return p.user, p.userErr
}

func remoteOutcome(id, email string) Outcome {
	user := models.User{ID: id, Email: email}
	return Outcome{
		User:    user,
		Session: &models.Session{AccessToken: "jwt-" + id, User: user, Source: models.SessionSourceRemote},
	}
}
