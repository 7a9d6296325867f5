package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-password/password"
	"golang.org/x/crypto/bcrypt"

	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/models"
)

// Local store keys.
const (
	UsersKey       = "@grimovies_users"
	CurrentUserKey = "@grimovies_current_user"
)

const localTokenPrefix = "local_token_"

// KeyValueStore is the device-local persistence the fallback needs.
type KeyValueStore interface {
	GetJSON(ctx context.Context, key string, v any) error
	SetJSON(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

type localUser struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"password_hash"`
	CreatedAt        time.Time `json:"created_at"`
	EmailConfirmedAt time.Time `json:"email_confirmed_at"`
}

func (u localUser) model() models.User {
	confirmed := u.EmailConfirmedAt
	return models.User{
		ID:               u.ID,
		Email:            u.Email,
		CreatedAt:        u.CreatedAt,
		EmailConfirmedAt: &confirmed,
	}
}

// LocalProvider keeps accounts on the device. It is used when the hosted auth
// service cannot be reached.
type LocalProvider struct {
	store KeyValueStore
	now   func() time.Time
	cost  int

	mu sync.Mutex
}

// LocalOption customises a LocalProvider.
type LocalOption func(*LocalProvider)

// WithClock overrides the time source.
func WithClock(now func() time.Time) LocalOption {
	return func(p *LocalProvider) { p.now = now }
}

// WithHashCost overrides the bcrypt cost.
func WithHashCost(cost int) LocalOption {
	return func(p *LocalProvider) { p.cost = cost }
}

// NewLocalProvider builds a provider over store.
func NewLocalProvider(store KeyValueStore, opts ...LocalOption) *LocalProvider {
	p := &LocalProvider{store: store, now: time.Now, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *LocalProvider) users(ctx context.Context) ([]localUser, error) {
	var users []localUser
	err := p.store.GetJSON(ctx, UsersKey, &users)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local users: %w", err)
	}
	return users, nil
}

func findByEmail(users []localUser, email string) (localUser, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return localUser{}, false
}

func newLocalID(now time.Time) (string, error) {
	suffix, err := password.Generate(9, 3, 0, true, true)
	if err != nil {
		return "", fmt.Errorf("generate local id: %w", err)
	}
	return fmt.Sprintf("local_%d_%s", now.UnixMilli(), suffix), nil
}

func localSession(user localUser) *models.Session {
	return &models.Session{
		AccessToken: localTokenPrefix + user.ID,
		User:        user.model(),
		Source:      models.SessionSourceLocal,
	}
}

// SignUp creates a device-local account, confirmed immediately.
func (p *LocalProvider) SignUp(ctx context.Context, email, pass string) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	users, err := p.users(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if _, exists := findByEmail(users, email); exists {
		return Outcome{}, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), p.cost)
	if err != nil {
		return Outcome{}, fmt.Errorf("hash password: %w", err)
	}

	now := p.now().UTC()
	id, err := newLocalID(now)
	if err != nil {
		return Outcome{}, err
	}

	user := localUser{
		ID:               id,
		Email:            email,
		PasswordHash:     string(hash),
		CreatedAt:        now,
		EmailConfirmedAt: now,
	}
	users = append(users, user)
	if err := p.store.SetJSON(ctx, UsersKey, users); err != nil {
		return Outcome{}, fmt.Errorf("save local users: %w", err)
	}

	session := localSession(user)
	return Outcome{User: session.User, Session: session}, nil
}

// SignIn matches email and password against the device-local accounts.
func (p *LocalProvider) SignIn(ctx context.Context, email, pass string) (Outcome, error) {
	p.mu.Lock()
	users, err := p.users(ctx)
	p.mu.Unlock()
	if err != nil {
		return Outcome{}, err
	}

	user, ok := findByEmail(users, email)
	if !ok {
		return Outcome{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(pass)); err != nil {
		return Outcome{}, ErrInvalidCredentials
	}

	session := localSession(user)
	return Outcome{User: session.User, Session: session}, nil
}

// SignOut has nothing to revoke for local sessions.
func (p *LocalProvider) SignOut(context.Context, models.Session) error {
	return nil
}

// CurrentUser resolves a local session token to its account.
func (p *LocalProvider) CurrentUser(ctx context.Context, session models.Session) (models.User, error) {
	id, ok := strings.CutPrefix(session.AccessToken, localTokenPrefix)
	if !ok {
		return models.User{}, ErrUnknownSession
	}

	p.mu.Lock()
	users, err := p.users(ctx)
	p.mu.Unlock()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.ID == id {
			return u.model(), nil
		}
	}
	return models.User{}, ErrUnknownSession
}

var _ Provider = (*LocalProvider)(nil)
