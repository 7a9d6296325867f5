package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hedibld92/Grimovies/internal/logging"
	"github.com/hedibld92/Grimovies/internal/models"
)

// Status is the coarse authentication state.
type Status string

const (
	StatusUnknown       Status = "unknown"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// Event is a session change delivered to subscribers.
type Event string

const (
	EventSignedIn  Event = "SIGNED_IN"
	EventSignedOut Event = "SIGNED_OUT"
)

// Listener receives session changes. session is nil on sign-out.
type Listener func(event Event, session *models.Session)

// State is a snapshot of the authentication state.
type State struct {
	Status  Status       `json:"status"`
	User    *models.User `json:"user"`
	Source  string       `json:"source,omitempty"`
	Loading bool         `json:"loading"`
	Error   string       `json:"error,omitempty"`
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// Result is returned by every mutating call. Failures carry a message instead of an error.
type Result struct {
	Success             bool         `json:"success"`
	Error               string       `json:"error,omitempty"`
	User                *models.User `json:"user,omitempty"`
	ConfirmationPending bool         `json:"confirmation_pending,omitempty"`
}

// Service owns the signed-in session and notifies subscribers when it changes.
type Service struct {
	provider Provider
	sessions SessionStore

	mu      sync.RWMutex
	state   State
	session *models.Session

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// NewService builds a Service in the unknown, loading state.
func NewService(provider Provider, sessions SessionStore) *Service {
	if provider == nil || sessions == nil {
		panic("auth: provider and session store must not be nil")
	}
	return &Service{
		provider:  provider,
		sessions:  sessions,
		state:     State{Status: StatusUnknown, Loading: true},
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers listener and returns a function removing it.
func (s *Service) Subscribe(listener Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Service) emit(event Event, session *models.Session) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(event, session)
	}
}

// State returns the current snapshot.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Session returns the current session, if any.
func (s *Service) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// CurrentUser returns the signed-in user, if any.
func (s *Service) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.User{}, false
	}
	return s.session.User, true
}

func (s *Service) setLoading() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Service) signedIn(session models.Session) {
	s.mu.Lock()
	user := session.User
	s.session = &session
	s.state = State{Status: StatusAuthenticated, User: &user, Source: session.Source}
	s.mu.Unlock()
	s.emit(EventSignedIn, &session)
}

func (s *Service) signedOut(errMsg string) {
	s.mu.Lock()
	s.session = nil
	s.state = State{Status: StatusAnonymous, Error: errMsg}
	s.mu.Unlock()
	s.emit(EventSignedOut, nil)
}

func (s *Service) fail(msg string) Result {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Error = msg
	s.mu.Unlock()
	return Result{Success: false, Error: msg}
}

// Start restores the persisted session once at startup and settles the state.
func (s *Service) Start(ctx context.Context) {
	logger := logging.FromContext(ctx)

	session, err := s.sessions.Load(ctx)
	if errors.Is(err, ErrSessionNotFound) {
		s.signedOut("")
		return
	}
	if err != nil {
		logger.Error("load persisted session", "error", err)
		s.signedOut(err.Error())
		return
	}

	user, err := s.provider.CurrentUser(ctx, session)
	switch {
	case err == nil:
		session.User = user
		s.signedIn(session)
	case IsNetworkError(err):
		logger.Warn("session check unreachable, keeping persisted session", "error", err)
		s.signedIn(session)
	default:
		logger.Info("persisted session rejected", "error", err)
		if clearErr := s.sessions.Clear(ctx); clearErr != nil {
			logger.Error("clear rejected session", "error", clearErr)
		}
		s.signedOut("")
	}
}

func validate(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return &ValidationError{Message: MsgMissingFields}
	}
	return nil
}

func validateLength(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &ValidationError{Message: MsgPasswordTooShort}
	}
	return nil
}

// SignUp validates the form, registers the account and opens its session when one is issued.
func (s *Service) SignUp(ctx context.Context, email, password, confirm string) Result {
	if err := validate(email, password); err != nil {
		return s.fail(message(err))
	}
	if password != confirm {
		return s.fail(MsgPasswordMismatch)
	}
	if err := validateLength(password); err != nil {
		return s.fail(message(err))
	}

	s.setLoading()
	out, err := s.provider.SignUp(ctx, strings.TrimSpace(email), password)
	if err != nil {
		logging.FromContext(ctx).Warn("sign up failed", "error", err)
		return s.fail(message(err))
	}
	return s.open(ctx, out)
}

// SignIn validates the form and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) Result {
	if err := validate(email, password); err != nil {
		return s.fail(message(err))
	}
	if err := validateLength(password); err != nil {
		return s.fail(message(err))
	}

	s.setLoading()
	out, err := s.provider.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		logging.FromContext(ctx).Warn("sign in failed", "error", err)
		return s.fail(message(err))
	}
	return s.open(ctx, out)
}

func (s *Service) open(ctx context.Context, out Outcome) Result {
	user := out.User
	if out.Session == nil {
		s.mu.Lock()
		s.state.Loading = false
		s.mu.Unlock()
		return Result{Success: true, User: &user, ConfirmationPending: true}
	}

	if err := s.sessions.Save(ctx, *out.Session); err != nil {
		logging.FromContext(ctx).Error("persist session", "error", err)
		return s.fail(err.Error())
	}
	s.signedIn(*out.Session)
	logging.FromContext(ctx).Info("signed in", "user_id", user.ID, "source", out.Session.Source)
	return Result{Success: true, User: &user}
}

// SignOut ends the current session. Signing out with no session succeeds.
func (s *Service) SignOut(ctx context.Context) Result {
	session, ok := s.Session()
	if !ok {
		s.signedOut("")
		return Result{Success: true}
	}

	s.setLoading()
	if err := s.provider.SignOut(ctx, session); err != nil && !IsNetworkError(err) {
		logging.FromContext(ctx).Warn("sign out failed", "error", err)
		return s.fail(message(err))
	}
	if err := s.sessions.Clear(ctx); err != nil {
		logging.FromContext(ctx).Error("clear session", "error", err)
		return s.fail(err.Error())
	}
	s.signedOut("")
	return Result{Success: true}
}
