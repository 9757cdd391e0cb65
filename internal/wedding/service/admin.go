package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/cryptox"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/jwtx"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

const MinPasswordLength = 8

// AdminService signs administrators in and out and resolves their
// session tokens.
type AdminService struct {
	Store  store.Store
	Clock  Clock
	Hasher *cryptox.PasswordHasher
	Signer jwtx.Signer
	// Verifier is usually the same HS256 value as Signer.
	Verifier   jwtx.Verifier
	Issuer     string
	SessionTTL time.Duration

	// Limiter throttles failed logins. Nil disables throttling.
	Limiter *LoginLimiter
}

var _ httpx.Authenticator = (*AdminService)(nil)

type LoginInput struct {
	Username string
	Password string

	// ClientAddr is combined with the username to key the limiter.
	ClientAddr string
}

type LoginResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	User      *domain.AdminUser
}

func (s *AdminService) ttl() time.Duration {
	if s.SessionTTL == 0 {
		return domain.DefaultSessionTTL
	}
	return s.SessionTTL
}

// CreateAdmin registers a new active administrator.
func (s *AdminService) CreateAdmin(ctx context.Context, username, email, password string) (*domain.AdminUser, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(password) == "" {
		return nil, domain.Invalid("Password is required")
	}
	if len(password) < MinPasswordLength {
		return nil, domain.Invalid("Password must be at least %d characters long", MinPasswordLength)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := domain.NewAdminUser(username, email, hash, s.Clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Store.AdminUsers().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domain.Invalid("Username or email already exists")
		}
		log.Error("failed to create admin user", slog.Any("error", err))
		return nil, err
	}

	log.Info("admin user created", slog.String("admin_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// SetActive enables or disables an administrator. Disabling revokes
// every session the administrator holds.
func (s *AdminService) SetActive(ctx context.Context, username string, active bool) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.AdminUsers().FindByUsername(ctx, domain.FoldIdentifier(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFound("admin user", "Admin user not found")
		}
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.AdminUsers().SetActive(ctx, user.ID, active, s.Clock.Now()); err != nil {
			return err
		}
		if active {
			return nil
		}
		return tx.Sessions().DeleteByAdminUserID(ctx, user.ID)
	})
	if err != nil {
		log.Error("failed to update admin user", slog.String("admin_id", user.ID), slog.Any("error", err))
		return err
	}

	log.Info("admin user updated", slog.String("admin_id", user.ID), slog.Bool("active", active))
	return nil
}

// Login checks credentials and opens a session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.Now()
	username := domain.FoldIdentifier(in.Username)
	key := username + "|" + in.ClientAddr

	// 1. Throttle.
	if s.Limiter != nil {
		if err := s.Limiter.Check(ctx, key); err != nil {
			log.Warn("login throttled", slog.String("username", username))
			return nil, err
		}
	}

	// 2. Credentials.
	user, err := s.Store.AdminUsers().FindByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, s.failLogin(ctx, key, username)
	case err != nil:
		log.Error("failed to load admin user", slog.Any("error", err))
		return nil, err
	}

	if err := s.Hasher.Verify(in.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("stored password hash unreadable", slog.String("admin_id", user.ID), slog.Any("error", err))
		}
		return nil, s.failLogin(ctx, key, username)
	}

	// 3. Account state is only revealed to someone holding the password.
	if !user.IsActive {
		log.Info("login for deactivated account", slog.String("admin_id", user.ID))
		return nil, ErrAccountDisabled
	}

	// 4. Session row and last login together.
	session, err := domain.NewSession(user.ID, s.ttl(), now)
	if err != nil {
		return nil, err
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Sessions().Create(ctx, session); err != nil {
			return err
		}
		return tx.AdminUsers().UpdateLastLogin(ctx, user.ID, now)
	})
	if err != nil {
		log.Error("failed to open session", slog.String("admin_id", user.ID), slog.Any("error", err))
		return nil, err
	}
	user.MarkLoggedIn(now)

	// 5. Token carrying the session id.
	token, err := s.Signer.Sign(jwtx.NewSessionClaims(user.ID, session.ID, user.Username, s.Issuer, s.ttl(), now))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	if s.Limiter != nil {
		if err := s.Limiter.Reset(ctx, key); err != nil {
			log.Warn("failed to reset login attempts", slog.Any("error", err))
		}
	}

	log.Info("admin logged in", slog.String("admin_id", user.ID), slog.String("session_id", session.ID))
	return &LoginResult{
		Token:     token,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

func (s *AdminService) failLogin(ctx context.Context, key, username string) error {
	log := slogx.FromContext(ctx)
	log.Info("login failed", slog.String("username", username))

	if s.Limiter != nil {
		if err := s.Limiter.Record(ctx, key); err != nil {
			log.Warn("failed to record login attempt", slog.Any("error", err))
		}
	}
	return ErrInvalidCredentials
}

// Authenticate resolves a session token to the administrator behind it.
// Sessions that have expired or whose administrator is gone or disabled
// are deleted on sight.
func (s *AdminService) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		log.Debug("session token rejected", slog.Any("error", err))
		return httpx.Principal{}, ErrSessionInvalid
	}

	session, err := s.Store.Sessions().FindByID(ctx, claims.SID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return httpx.Principal{}, ErrSessionInvalid
	case err != nil:
		return httpx.Principal{}, err
	}
	if session.AdminUserID != claims.Subject {
		log.Warn("session token subject mismatch", slog.String("session_id", session.ID))
		return httpx.Principal{}, ErrSessionInvalid
	}

	if session.IsExpired(s.Clock.Now()) {
		s.dropSession(ctx, session.ID)
		return httpx.Principal{}, ErrSessionInvalid
	}

	user, err := s.Store.AdminUsers().FindByID(ctx, session.AdminUserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.dropSession(ctx, session.ID)
		return httpx.Principal{}, ErrSessionInvalid
	case err != nil:
		return httpx.Principal{}, err
	}
	if !user.IsActive {
		s.dropSession(ctx, session.ID)
		return httpx.Principal{}, ErrSessionInvalid
	}

	return httpx.Principal{UserID: user.ID, Username: user.Username, SessionID: session.ID}, nil
}

func (s *AdminService) dropSession(ctx context.Context, id string) {
	if err := s.Store.Sessions().Delete(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Warn("failed to delete stale session", slog.String("session_id", id), slog.Any("error", err))
	}
}

// Logout deletes the session. Logging out twice is not an error.
func (s *AdminService) Logout(ctx context.Context, sessionID string) error {
	if err := s.Store.Sessions().Delete(ctx, sessionID); err != nil && !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Error("failed to delete session", slog.String("session_id", sessionID), slog.Any("error", err))
		return err
	}
	slogx.FromContext(ctx).Info("admin logged out", slog.String("session_id", sessionID))
	return nil
}
