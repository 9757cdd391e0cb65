package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict is returned when a write would break a reference, such
	// as deleting a meal option that guests have already picked.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Repositories hang off it so a
// transaction can hand out the same set scoped to itself.
type Store interface {
	Invites() Invites
	Guests() Guests
	RSVPs() RSVPs
	MealSelections() MealSelections
	QuestionResponses() QuestionResponses
	MealOptions() MealOptions
	Questions() Questions
	Settings() Settings
	EmailTemplates() EmailTemplates
	AdminUsers() AdminUsers
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or
	// Rollback the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only use the repositories of tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a Store bound to one transaction.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invites interface {
	// Save inserts the invite and its guests. A token that is already in
	// use yields ErrAlreadyExists.
	Save(ctx context.Context, inv *domain.Invite) error

	// FindByID and FindByToken load the invite with its guests in
	// insertion order.
	FindByID(ctx context.Context, id string) (*domain.Invite, error)
	FindByToken(ctx context.Context, token string) (*domain.Invite, error)

	// FindAll returns every invite with guests, newest first.
	FindAll(ctx context.Context) ([]*domain.Invite, error)

	// Delete cascades to guests, the RSVP and their satellite records.
	Delete(ctx context.Context, id string) error

	ExistsByToken(ctx context.Context, token string) (bool, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
}

type Guests interface {
	// Save inserts or updates by id and returns the stored row.
	Save(ctx context.Context, g domain.Guest) (domain.Guest, error)
	FindByID(ctx context.Context, id string) (domain.Guest, error)
	FindByInviteID(ctx context.Context, inviteID string) ([]domain.Guest, error)

	// FindPlusOneByInviteID returns ErrNotFound when the invite has no
	// plus-one.
	FindPlusOneByInviteID(ctx context.Context, inviteID string) (domain.Guest, error)
	Delete(ctx context.Context, id string) error
}

type RSVPs interface {
	// Save inserts or updates by id. A second RSVP for the same invite
	// yields ErrAlreadyExists.
	Save(ctx context.Context, r *domain.RSVP) error
	FindByID(ctx context.Context, id string) (*domain.RSVP, error)
	FindByInviteID(ctx context.Context, inviteID string) (*domain.RSVP, error)

	// FindByInviteIDs resolves many invites in one query. Invites without
	// a response are absent from the map. No query is issued for an empty
	// id list.
	FindByInviteIDs(ctx context.Context, inviteIDs []string) (map[string]*domain.RSVP, error)
}

type MealSelections interface {
	Save(ctx context.Context, s domain.MealSelection) error
	SaveMany(ctx context.Context, s []domain.MealSelection) error
	FindByID(ctx context.Context, id string) (domain.MealSelection, error)
	FindByGuestID(ctx context.Context, guestID string) ([]domain.MealSelection, error)
	FindByInviteID(ctx context.Context, inviteID string) ([]domain.MealSelection, error)
	DeleteByGuestID(ctx context.Context, guestID string) error

	// CountByOption tallies selections made by attending invites.
	CountByOption(ctx context.Context) ([]MealCount, error)
}

// MealCount is how many guests picked one meal option.
type MealCount struct {
	MealOptionID string
	Name         string
	CourseType   domain.CourseType
	Count        int
}

type QuestionResponses interface {
	Save(ctx context.Context, r domain.QuestionResponse) error
	SaveMany(ctx context.Context, r []domain.QuestionResponse) error
	FindByID(ctx context.Context, id string) (domain.QuestionResponse, error)
	FindByRSVPID(ctx context.Context, rsvpID string) ([]domain.QuestionResponse, error)
	DeleteByRSVPID(ctx context.Context, rsvpID string) error
}

type MealOptions interface {
	Create(ctx context.Context, m *domain.MealOption) error
	Update(ctx context.Context, m *domain.MealOption) error
	FindByID(ctx context.Context, id string) (*domain.MealOption, error)
	FindByCourseAndName(ctx context.Context, course domain.CourseType, name string) (*domain.MealOption, error)

	// FindAll orders by course then name.
	FindAll(ctx context.Context, onlyAvailable bool) ([]*domain.MealOption, error)

	// Delete yields ErrConflict while selections reference the option.
	Delete(ctx context.Context, id string) error
}

type Questions interface {
	Create(ctx context.Context, q *domain.CustomQuestion) error
	Update(ctx context.Context, q *domain.CustomQuestion) error
	FindByID(ctx context.Context, id string) (*domain.CustomQuestion, error)
	FindByText(ctx context.Context, text string) (*domain.CustomQuestion, error)

	// FindAll orders by display order.
	FindAll(ctx context.Context) ([]*domain.CustomQuestion, error)
	Delete(ctx context.Context, id string) error
}

type Settings interface {
	// Get returns ErrNotFound until settings have been saved once.
	Get(ctx context.Context) (*domain.WeddingSettings, error)
	Save(ctx context.Context, s *domain.WeddingSettings) error
}

type EmailTemplates interface {
	Create(ctx context.Context, t *domain.EmailTemplate) error
	Update(ctx context.Context, t *domain.EmailTemplate) error
	FindByID(ctx context.Context, id string) (*domain.EmailTemplate, error)
	FindByName(ctx context.Context, name string) (*domain.EmailTemplate, error)
	FindAll(ctx context.Context) ([]*domain.EmailTemplate, error)

	// FindActiveByType returns the most recently updated active template
	// of the given type.
	FindActiveByType(ctx context.Context, tt domain.TemplateType) (*domain.EmailTemplate, error)

	// DeactivateOthers switches off every template of tt except keepID.
	DeactivateOthers(ctx context.Context, tt domain.TemplateType, keepID string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type AdminUsers interface {
	// Create yields ErrAlreadyExists for a taken username or email.
	Create(ctx context.Context, u *domain.AdminUser) error
	FindByID(ctx context.Context, id string) (*domain.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
	Count(ctx context.Context) (int, error)
}

type Sessions interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByAdminUserID(ctx context.Context, adminUserID string) error

	// DeleteExpired removes sessions that expired before now and returns
	// how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
