package auth

import (
	"context"

	"github.com/hedibld92/Grimovies/internal/models"
)

// Outcome is what a provider returns after a successful sign-up or sign-in.
// Session is nil when the account must confirm its email first.
type Outcome struct {
	User    models.User
	Session *models.Session
}

// Provider authenticates accounts against one backend.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (Outcome, error)
	SignIn(ctx context.Context, email, password string) (Outcome, error)
	SignOut(ctx context.Context, session models.Session) error
	CurrentUser(ctx context.Context, session models.Session) (models.User, error)
}
