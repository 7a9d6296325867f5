package auth

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/models"
)

var localIDPattern = regexp.MustCompile(`^local_1700000000000_[a-z0-9]{9}$`)

func newLocal(store KeyValueStore) *LocalProvider {
	clock := func() time.Time { return time.UnixMilli(1700000000000) }
	return NewLocalProvider(store, WithClock(clock), WithHashCost(bcrypt.MinCost))
}

func TestLocalSignUpCreatesConfirmedAccount(t *testing.T) {
	ctx := context.Background()
	provider := newLocal(newMemoryKV())

	out, err := provider.SignUp(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	assert.Regexp(t, localIDPattern, out.User.ID)
	require.NotNil(t, out.User.EmailConfirmedAt)
	require.NotNil(t, out.Session)
	assert.Equal(t, "local_token_"+out.User.ID, out.Session.AccessToken)
	assert.Equal(t, models.SessionSourceLocal, out.Session.Source)
}

func TestLocalSignUpRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	provider := newLocal(newMemoryKV())

	_, err := provider.SignUp(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = provider.SignUp(ctx, "ana@example.com", "other12")
	assert.ErrorIs(t, err, ErrAccountExists)
	assert.Equal(t, "Un compte avec cet email existe déjà", err.Error())
}

func TestLocalSignInIsStable(t *testing.T) {
	ctx := context.Background()
	provider := newLocal(newMemoryKV())

	created, err := provider.SignUp(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	first, err := provider.SignIn(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	second, err := provider.SignIn(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, created.User.ID, first.User.ID)
	assert.Equal(t, first.User.ID, second.User.ID)

	_, err = provider.SignIn(ctx, "ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = provider.SignIn(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalAccountsPersistInStore(t *testing.T) {
	ctx := context.Background()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer store.Close()

	created, err := newLocal(store).SignUp(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	reloaded := newLocal(store)
	user, err := reloaded.CurrentUser(ctx, *created.Session)
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, user.ID)

	_, err = reloaded.CurrentUser(ctx, models.Session{AccessToken: "jwt"})
	assert.ErrorIs(t, err, ErrUnknownSession)
}
