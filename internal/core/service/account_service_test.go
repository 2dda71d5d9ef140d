package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
	"github.com/homebase/household-api/internal/testutil"
)

type accountFixture struct {
	auth     *AuthService
	accounts *AccountService
	jo       domain.Identity
	kim      domain.Identity
}

func newAccountFixture(t *testing.T) accountFixture {
	t.Helper()
	store := testutil.NewUserStore()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService(TokenConfig{Secret: "k"})
	auth := NewAuthService(store, tokens, hasher, nil, zerolog.Nop())

	register := func(email string) domain.Identity {
		u, err := auth.Register(context.Background(), ports.RegisterInput{
			FullName: "User", Email: email, Password: "old-pass", Role: "member",
		})
		require.NoError(t, err)
		return domain.Identity{UserID: u.ID, Role: u.Role, Email: u.Email}
	}

	return accountFixture{
		auth:     auth,
		accounts: NewAccountService(store, hasher, zerolog.Nop()),
		jo:       register("jo@x.com"),
		kim:      register("kim@x.com"),
	}
}

func strPtr(s string) *string { return &s }

func TestAccountService_Me(t *testing.T) {
	f := newAccountFixture(t)

	user, err := f.accounts.Me(context.Background(), f.jo)
	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", user.Email)

	_, err = f.accounts.Me(context.Background(), domain.Identity{})
	assert.ErrorIs(t, err, domain.ErrAuthMissing)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user, err := f.accounts.UpdateProfile(ctx, f.jo, f.jo.UserID, domain.ProfileUpdate{
		FullName: strPtr("  Jo Smith "),
		Work:     strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jo Smith", user.FullName)
	assert.Empty(t, user.Work)

	_, err = f.accounts.UpdateProfile(ctx, f.jo, f.jo.UserID, domain.ProfileUpdate{Address: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.accounts.UpdateProfile(ctx, f.jo, f.kim.UserID, domain.ProfileUpdate{FullName: strPtr("Hijack")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountService_ChangePassword(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	err := f.accounts.ChangePassword(ctx, f.jo, f.jo.UserID, "wrong", "new-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = f.accounts.ChangePassword(ctx, f.jo, f.kim.UserID, "old-pass", "new-pass")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = f.accounts.ChangePassword(ctx, f.jo, f.jo.UserID, "", "new-pass")
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, f.accounts.ChangePassword(ctx, f.jo, f.jo.UserID, "old-pass", "new-pass"))

	_, _, err = f.auth.Login(ctx, "jo@x.com", "old-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = f.auth.Login(ctx, "jo@x.com", "new-pass")
	assert.NoError(t, err)
}

func TestAccountService_ChangeEmail(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	_, err := f.accounts.ChangeEmail(ctx, f.jo, f.jo.UserID, "KIM@x.com")
	assert.ErrorIs(t, err, domain.ErrEmailInUse)

	_, err = f.accounts.ChangeEmail(ctx, f.jo, f.jo.UserID, "nope")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.accounts.ChangeEmail(ctx, f.jo, f.kim.UserID, "new@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	user, err := f.accounts.ChangeEmail(ctx, f.jo, f.jo.UserID, "jo.new@x.com")
	require.NoError(t, err)
	assert.Equal(t, "jo.new@x.com", user.Email)

	_, _, err = f.auth.Login(ctx, "jo.new@x.com", "old-pass")
	assert.NoError(t, err)
	_, _, err = f.auth.Login(ctx, "jo@x.com", "old-pass")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountService_ChangeEmailCaseOnly(t *testing.T) {
	f := newAccountFixture(t)

	user, err := f.accounts.ChangeEmail(context.Background(), f.jo, f.jo.UserID, "Jo@X.com")
	require.NoError(t, err)
	assert.Equal(t, "Jo@X.com", user.Email)
}
