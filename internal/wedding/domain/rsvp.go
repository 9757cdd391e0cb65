package domain

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

// RSVP is the single current response for an invite. Resubmitting
// updates this record; an invite never has two.
type RSVP struct {
	ID                  string
	InviteID            string
	IsAttending         bool
	AdultsAttending     int
	ChildrenAttending   int
	DietaryRequirements *string
	RespondedAt         time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Attendance is the mutable part of an RSVP.
type Attendance struct {
	IsAttending         bool
	AdultsAttending     int
	ChildrenAttending   int
	DietaryRequirements *string
}

func (a Attendance) Validate() error {
	if a.AdultsAttending < 0 || a.ChildrenAttending < 0 {
		return Invalid("Attendee counts cannot be negative")
	}
	if a.IsAttending && a.AdultsAttending+a.ChildrenAttending < 1 {
		return Invalid("At least one person must be attending")
	}
	return nil
}

// Headcount is the number of people attending, zero when declining.
func (a Attendance) Headcount() int {
	if !a.IsAttending {
		return 0
	}
	return a.AdultsAttending + a.ChildrenAttending
}

// NewRSVP records the first response for inviteID.
func NewRSVP(inviteID string, a Attendance, now time.Time) (*RSVP, error) {
	if strings.TrimSpace(inviteID) == "" {
		return nil, Invalid("Invite ID is required")
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	r := &RSVP{
		ID:        idx.NewString(),
		InviteID:  inviteID,
		CreatedAt: now,
	}
	r.apply(a, now)
	return r, nil
}

// ReconstituteRSVP rebuilds a persisted RSVP without re-validating it.
func ReconstituteRSVP(
	id, inviteID string,
	isAttending bool,
	adultsAttending, childrenAttending int,
	dietaryRequirements *string,
	respondedAt, createdAt, updatedAt time.Time,
) *RSVP {
	return &RSVP{
		ID:                  id,
		InviteID:            inviteID,
		IsAttending:         isAttending,
		AdultsAttending:     adultsAttending,
		ChildrenAttending:   childrenAttending,
		DietaryRequirements: dietaryRequirements,
		RespondedAt:         respondedAt,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

// UpdateAttendance overwrites the response in place, keeping its identity.
func (r *RSVP) UpdateAttendance(a Attendance, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	r.apply(a, now)
	return nil
}

func (r *RSVP) apply(a Attendance, now time.Time) {
	r.IsAttending = a.IsAttending
	r.AdultsAttending = a.AdultsAttending
	r.ChildrenAttending = a.ChildrenAttending
	r.DietaryRequirements = optionalText(a.DietaryRequirements)
	r.RespondedAt = now
	r.UpdatedAt = now
}

func (r *RSVP) Attendance() Attendance {
	return Attendance{
		IsAttending:         r.IsAttending,
		AdultsAttending:     r.AdultsAttending,
		ChildrenAttending:   r.ChildrenAttending,
		DietaryRequirements: r.DietaryRequirements,
	}
}
