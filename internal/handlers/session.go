package handlers

import (
	"context"
	"net/http"

	"github.com/hedibld92/Grimovies/internal/logging"
	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/supabase"
)

// MsgSignInRequired is returned for user-data endpoints without a signed-in user.
const MsgSignInRequired = "Connexion requise"

type userKey struct{}

// RequireUser rejects requests while no user is signed in. Otherwise it attaches the
// user, and the backend bearer token of remote sessions, to the request context.
func RequireUser(a AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			state := a.State()
			if !state.Authenticated() {
				respondError(ctx, w, http.StatusUnauthorized, MsgSignInRequired)
				return
			}

			user := *state.User
			ctx = context.WithValue(ctx, userKey{}, user)
			ctx = logging.WithUser(ctx, user.ID)
			if session, ok := a.Session(); ok && session.Source == models.SessionSourceRemote {
				ctx = supabase.WithAccessToken(ctx, session.AccessToken)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFrom(ctx context.Context) models.User {
	user, _ := ctx.Value(userKey{}).(models.User)
	return user
}
