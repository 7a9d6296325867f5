package auth

import (
	"context"

	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/supabase"
)

// RemoteProvider authenticates against the hosted auth service.
type RemoteProvider struct {
	client *supabase.AuthClient
}

// NewRemoteProvider wraps client.
func NewRemoteProvider(client *supabase.AuthClient) *RemoteProvider {
	return &RemoteProvider{client: client}
}

// SignUp registers the account remotely.
func (p *RemoteProvider) SignUp(ctx context.Context, email, password string) (Outcome, error) {
	res, err := p.client.SignUp(ctx, email, password)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{User: res.User, Session: res.Session}, nil
}

// SignIn opens a remote session.
func (p *RemoteProvider) SignIn(ctx context.Context, email, password string) (Outcome, error) {
	res, err := p.client.SignIn(ctx, email, password)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{User: res.User, Session: res.Session}, nil
}

// SignOut revokes the remote session.
func (p *RemoteProvider) SignOut(ctx context.Context, session models.Session) error {
	return p.client.SignOut(ctx, session.AccessToken)
}

// CurrentUser resolves the account behind the session's token.
func (p *RemoteProvider) CurrentUser(ctx context.Context, session models.Session) (models.User, error) {
	return p.client.User(ctx, session.AccessToken)
}

var _ Provider = (*RemoteProvider)(nil)
