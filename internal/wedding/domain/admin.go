package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// AdminUser can sign in to manage invites.
type AdminUser struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAdminUser validates the username and email. Both are stored case
// folded so lookups are case insensitive.
func NewAdminUser(username, email, passwordHash string, now time.Time) (*AdminUser, error) {
	username = FoldIdentifier(username)
	email = strings.ToLower(strings.TrimSpace(email))

	switch {
	case username == "":
		return nil, Invalid("Username is required")
	case runeLen(username) < 3:
		return nil, Invalid("Username must be at least 3 characters long")
	case !usernamePattern.MatchString(username):
		return nil, Invalid("Username must contain only alphanumeric characters and underscores")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, Invalid("Password hash is required")
	}

	return &AdminUser{
		ID:           idx.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func ReconstituteAdminUser(id, username, email, passwordHash string, isActive bool, lastLoginAt *time.Time, createdAt, updatedAt time.Time) *AdminUser {
	return &AdminUser{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     isActive,
		LastLoginAt:  lastLoginAt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func (u *AdminUser) MarkLoggedIn(now time.Time) {
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Session bounds.
const (
	MinSessionTTL     = time.Hour
	MaxSessionTTL     = 168 * time.Hour
	DefaultSessionTTL = 24 * time.Hour
)

// Session is a server side login record. Tokens issued to the admin
// carry its ID so deleting the row revokes them.
type Session struct {
	ID          string
	AdminUserID string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

func NewSession(adminUserID string, ttl time.Duration, now time.Time) (*Session, error) {
	if adminUserID == "" {
		return nil, Invalid("Admin user ID is required")
	}
	if ttl < MinSessionTTL || ttl > MaxSessionTTL {
		return nil, Invalid("Session expiry must be between 1 and 168 hours")
	}
	return &Session{
		ID:          idx.NewString(),
		AdminUserID: adminUserID,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	}, nil
}

func ReconstituteSession(id, adminUserID string, expiresAt, createdAt time.Time) *Session {
	return &Session{ID: id, AdminUserID: adminUserID, ExpiresAt: expiresAt, CreatedAt: createdAt}
}

func (s *Session) IsExpired(now time.Time) bool { return !now.Before(s.ExpiresAt) }
