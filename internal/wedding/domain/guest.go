package domain

import (
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

// Guest is a named party on an invite. Declared guests are created with
// the invite; a plus-one is created and removed by RSVP submission.
type Guest struct {
	ID        string
	InviteID  string
	Name      string
	Email     string // empty for guests without a contact address
	IsPlusOne bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestInput is one member of a group invite as supplied by an admin.
type GuestInput struct {
	Name  string
	Email string
}

func newDeclaredGuest(inviteID, name, email string, now time.Time) Guest {
	return Guest{
		ID:        idx.NewString(),
		InviteID:  inviteID,
		Name:      CleanText(name),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewPlusOneGuest mints the plus-one for inviteID.
func NewPlusOneGuest(inviteID, name string, now time.Time) (*Guest, error) {
	if err := validateGuestName(name); err != nil {
		return nil, err
	}
	return &Guest{
		ID:        idx.NewString(),
		InviteID:  inviteID,
		Name:      CleanText(name),
		IsPlusOne: true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ReconstituteGuest rebuilds a persisted guest without re-validating it.
func ReconstituteGuest(id, inviteID, name, email string, isPlusOne bool, createdAt, updatedAt time.Time) Guest {
	return Guest{
		ID:        id,
		InviteID:  inviteID,
		Name:      name,
		Email:     email,
		IsPlusOne: isPlusOne,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Rename changes the guest's name in place, keeping its identity.
func (g *Guest) Rename(name string, now time.Time) error {
	if err := validateGuestName(name); err != nil {
		return err
	}
	g.Name = CleanText(name)
	g.UpdatedAt = now
	return nil
}

func (g Guest) HasEmail() bool { return !isBlank(g.Email) }

func validateGuestName(name string) error {
	if isBlank(name) {
		return Invalid("Guest name is required")
	}
	if runeLen(name) > 200 {
		return Invalid("Guest name must be 200 characters or less")
	}
	return nil
}

func validateEmail(email string) error {
	if isBlank(email) {
		return Invalid("Email is required")
	}
	if !IsValidEmail(email) {
		return Invalid("Invalid email format")
	}
	return nil
}
