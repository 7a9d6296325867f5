package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/hedibld92/Grimovies/internal/models"
)

// AuthClient talks to the hosted authentication service.
type AuthClient struct {
	client *Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	CreatedAt        time.Time  `json:"created_at"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
}

func (u authUser) model() models.User {
	return models.User{
		ID:               u.ID,
		Email:            u.Email,
		CreatedAt:        u.CreatedAt,
		EmailConfirmedAt: u.EmailConfirmedAt,
	}
}

// authResponse is either a session or, when email confirmation is pending, a bare user.
type authResponse struct {
	authUser
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at"`
	User         *authUser `json:"user"`
}

// AuthResult is the outcome of a sign-up or sign-in. Session is nil when the account
// still awaits email confirmation.
type AuthResult struct {
	User    models.User
	Session *models.Session
}

func (r authResponse) result() AuthResult {
	user := r.authUser
	if r.User != nil {
		user = *r.User
	}
	out := AuthResult{User: user.model()}
	if r.AccessToken == "" {
		return out
	}

	session := &models.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		User:         out.User,
		Source:       models.SessionSourceRemote,
	}
	switch {
	case r.ExpiresAt > 0:
		at := time.Unix(r.ExpiresAt, 0).UTC()
		session.ExpiresAt = &at
	case r.ExpiresIn > 0:
		at := time.Now().Add(time.Duration(r.ExpiresIn) * time.Second).UTC()
		session.ExpiresAt = &at
	}
	out.Session = session
	return out
}

// SignUp registers a new account.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (AuthResult, error) {
	var resp authResponse
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return AuthResult{}, err
	}
	return resp.result(), nil
}

// SignIn exchanges email and password for a session.
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	var resp authResponse
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": []string{"password"}},
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return AuthResult{}, err
	}
	return resp.result(), nil
}

// SignOut revokes the session identified by accessToken.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	return a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/logout",
		token:  accessToken,
	}, nil)
}

// User returns the account owning accessToken.
func (a *AuthClient) User(ctx context.Context, accessToken string) (models.User, error) {
	var user authUser
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
		token:  accessToken,
	}, &user)
	if err != nil {
		return models.User{}, err
	}
	return user.model(), nil
}
