package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/memory"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite"
	"github.com/aussiebroadwan/wedding/pkg/cryptox"
	"github.com/aussiebroadwan/wedding/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	store *sqlite.Store
	svc   *AdminService
	now   *time.Time
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()

	now := testNow
	clock := func() time.Time { return now }

	tokens, err := jwtx.NewHS256([]byte(strings.Repeat("s", jwtx.MinSecretLength)), jwtx.VerifyOptions{
		Issuer: "wedding",
		Now:    clock,
	})
	require.NoError(t, err)

	s := newTestStore(t)
	return adminFixture{
		store: s,
		now:   &now,
		svc: &AdminService{
			Store:      s,
			Clock:      clock,
			Hasher:     cryptox.NewPasswordHasher("pepper"),
			Signer:     tokens,
			Verifier:   tokens,
			Issuer:     "wedding",
			SessionTTL: 2 * time.Hour,
			Limiter: &LoginLimiter{
				Counters:    memory.NewCountersWithClock(clock),
				MaxAttempts: 2,
				Window:      time.Minute,
				Clock:       clock,
			},
		},
	}
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	_, err := f.svc.CreateAdmin(ctx, "alex", "alex@example.com", "short")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.EqualError(t, err, "Password must be at least 8 characters long")

	user, err := f.svc.CreateAdmin(ctx, "Alex", "Alex@Example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alex", user.Username)
	require.Equal(t, "alex@example.com", user.Email)
	require.True(t, user.IsActive)
	require.NotContains(t, user.PasswordHash, "correct horse")

	_, err = f.svc.CreateAdmin(ctx, "ALEX", "other@example.com", "correct horse")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.EqualError(t, err, "Username or email already exists")
}

func TestLoginAuthenticateLogout(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	_, err := f.svc.CreateAdmin(ctx, "alex", "alex@example.com", "correct horse")
	require.NoError(t, err)

	res, err := f.svc.Login(ctx, LoginInput{Username: "ALEX", Password: "correct horse", ClientAddr: "10.0.0.1"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.True(t, res.ExpiresAt.Equal(testNow.Add(2*time.Hour)))
	require.NotNil(t, res.User.LastLoginAt)

	stored, err := f.store.AdminUsers().FindByUsername(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)
	require.True(t, stored.LastLoginAt.Equal(testNow))

	p, err := f.svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, p.UserID)
	require.Equal(t, "alex", p.Username)
	require.Equal(t, res.SessionID, p.SessionID)

	require.NoError(t, f.svc.Logout(ctx, res.SessionID))
	require.NoError(t, f.svc.Logout(ctx, res.SessionID))

	_, err = f.svc.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	_, err := f.svc.CreateAdmin(ctx, "alex", "alex@example.com", "correct horse")
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, LoginInput{Username: "nobody", Password: "correct horse"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "wrong", ClientAddr: "10.0.0.1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "wrong", ClientAddr: "10.0.0.1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Even the right password is refused while locked out.
	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "correct horse", ClientAddr: "10.0.0.1"})
	require.ErrorIs(t, err, ErrTooManyAttempts)

	// Another address has its own budget.
	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "correct horse", ClientAddr: "10.0.0.2"})
	require.NoError(t, err)

	*f.now = f.now.Add(time.Minute)
	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "correct horse", ClientAddr: "10.0.0.1"})
	require.NoError(t, err)
}

func TestDeactivatedAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	_, err := f.svc.CreateAdmin(ctx, "alex", "alex@example.com", "correct horse")
	require.NoError(t, err)
	res, err := f.svc.Login(ctx, LoginInput{Username: "alex", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, f.svc.SetActive(ctx, "alex", false))

	_, err = f.svc.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, ErrSessionInvalid)

	_, err = f.store.Sessions().FindByID(ctx, res.SessionID)
	require.Error(t, err, "disabling revokes sessions")

	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, LoginInput{Username: "alex", Password: "correct horse", ClientAddr: "other"})
	require.ErrorIs(t, err, ErrAccountDisabled)

	require.ErrorIs(t, f.svc.SetActive(ctx, "ghost", true), domain.ErrNotFound)
}

func TestAuthenticateRejects(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	_, err := f.svc.CreateAdmin(ctx, "alex", "alex@example.com", "correct horse")
	require.NoError(t, err)
	res, err := f.svc.Login(ctx, LoginInput{Username: "alex", Password: "correct horse"})
	require.NoError(t, err)

	_, err = f.svc.Authenticate(ctx, "not-a-jwt")
	require.ErrorIs(t, err, ErrSessionInvalid)

	_, err = f.svc.Authenticate(ctx, res.Token+"x")
	require.ErrorIs(t, err, ErrSessionInvalid)

	*f.now = f.now.Add(3 * time.Hour)
	_, err = f.svc.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, ErrSessionInvalid)
}
