package supabase

import "context"

type ctxKey struct{}

// WithAccessToken attaches the signed-in user's bearer token to ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// AccessTokenFrom returns the bearer token attached to ctx, if any.
func AccessTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(ctxKey{}).(string)
	return token
}
