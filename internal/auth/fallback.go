package auth

import (
	"context"

	"github.com/hedibld92/Grimovies/internal/logging"
	"github.com/hedibld92/Grimovies/internal/models"
)

// Policy decides whether a primary provider failure should be retried on the fallback.
type Policy func(err error) bool

// FallbackOnNetworkError hands over to the fallback only for connectivity failures.
// Rejections such as a duplicate email or a wrong password are surfaced as-is.
func FallbackOnNetworkError(err error) bool {
	return IsNetworkError(err)
}

// FallbackProvider tries Primary and switches to Fallback when Policy allows it.
// Sessions are routed back to the provider that issued them.
type FallbackProvider struct {
	Primary  Provider
	Fallback Provider
	Policy   Policy
}

// NewFallbackProvider builds a provider using FallbackOnNetworkError.
func NewFallbackProvider(primary, fallback Provider) *FallbackProvider {
	return &FallbackProvider{Primary: primary, Fallback: fallback, Policy: FallbackOnNetworkError}
}

func (p *FallbackProvider) shouldFallback(err error) bool {
	if p.Fallback == nil {
		return false
	}
	policy := p.Policy
	if policy == nil {
		policy = FallbackOnNetworkError
	}
	return policy(err)
}

// SignUp registers on the primary provider, or locally when it is unreachable.
func (p *FallbackProvider) SignUp(ctx context.Context, email, password string) (Outcome, error) {
	out, err := p.Primary.SignUp(ctx, email, password)
	if err == nil || !p.shouldFallback(err) {
		return out, err
	}
	logging.FromContext(ctx).Warn("auth backend unreachable, signing up locally", "error", err)
	return p.Fallback.SignUp(ctx, email, password)
}

// SignIn opens a session on the primary provider, or locally when it is unreachable.
func (p *FallbackProvider) SignIn(ctx context.Context, email, password string) (Outcome, error) {
	out, err := p.Primary.SignIn(ctx, email, password)
	if err == nil || !p.shouldFallback(err) {
		return out, err
	}
	logging.FromContext(ctx).Warn("auth backend unreachable, signing in locally", "error", err)
	return p.Fallback.SignIn(ctx, email, password)
}

func (p *FallbackProvider) owner(session models.Session) Provider {
	if session.Source == models.SessionSourceLocal && p.Fallback != nil {
		return p.Fallback
	}
	return p.Primary
}

// SignOut ends the session on the provider that issued it.
func (p *FallbackProvider) SignOut(ctx context.Context, session models.Session) error {
	return p.owner(session).SignOut(ctx, session)
}

// CurrentUser resolves the session on the provider that issued it.
func (p *FallbackProvider) CurrentUser(ctx context.Context, session models.Session) (models.User, error) {
	return p.owner(session).CurrentUser(ctx, session)
}

var _ Provider = (*FallbackProvider)(nil)
