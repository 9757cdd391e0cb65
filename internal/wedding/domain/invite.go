package domain

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

// Invite is one response link shared by a fixed set of guests.
//
// AdultsCount and ChildrenCount are the declared capacity and never change
// after creation. Guests keeps insertion order; consumers treat the first
// AdultsCount entries as the adults.
type Invite struct {
	ID             string
	Token          string
	GroupName      string // empty for individual invites
	AdultsCount    int
	ChildrenCount  int
	PlusOneAllowed bool
	Guests         []Guest
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewIndividualInvite creates an invite for a single adult guest.
func NewIndividualInvite(token, guestName, email string, plusOneAllowed bool, now time.Time) (*Invite, error) {
	if err := validateGuestName(guestName); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	inv := &Invite{
		ID:             idx.NewString(),
		Token:          token,
		AdultsCount:    1,
		ChildrenCount:  0,
		PlusOneAllowed: plusOneAllowed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	inv.Guests = []Guest{newDeclaredGuest(inv.ID, guestName, email, now)}
	return inv, nil
}

// NewGroupInvite creates an invite for a named group. The guest list must
// match the declared head count and at least one guest must be reachable
// by email. Groups never allow a plus-one.
func NewGroupInvite(token, groupName string, adultsCount, childrenCount int, guests []GuestInput, now time.Time) (*Invite, error) {
	if isBlank(groupName) {
		return nil, Invalid("Group name is required")
	}
	if adultsCount < 0 || childrenCount < 0 {
		return nil, Invalid("Adults and children counts cannot be negative")
	}
	if len(guests) != adultsCount+childrenCount {
		return nil, Invalid("Guest count must match adultsCount + childrenCount")
	}

	hasContact := false
	for _, g := range guests {
		if !isBlank(g.Email) {
			hasContact = true
			break
		}
	}
	if !hasContact {
		return nil, Invalid("At least one guest must have an email address")
	}

	for _, g := range guests {
		if err := validateGuestName(g.Name); err != nil {
			return nil, err
		}
		if email := strings.TrimSpace(g.Email); email != "" && !IsValidEmail(email) {
			return nil, Invalid("Invalid email format")
		}
	}

	inv := &Invite{
		ID:            idx.NewString(),
		Token:         token,
		GroupName:     CleanText(groupName),
		AdultsCount:   adultsCount,
		ChildrenCount: childrenCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inv.Guests = make([]Guest, 0, len(guests))
	for _, g := range guests {
		inv.Guests = append(inv.Guests, newDeclaredGuest(inv.ID, g.Name, strings.TrimSpace(g.Email), now))
	}
	return inv, nil
}

// ReconstituteInvite rebuilds a persisted invite without re-validating it.
func ReconstituteInvite(
	id, token, groupName string,
	adultsCount, childrenCount int,
	plusOneAllowed bool,
	guests []Guest,
	sentAt *time.Time,
	createdAt, updatedAt time.Time,
) *Invite {
	return &Invite{
		ID:             id,
		Token:          token,
		GroupName:      groupName,
		AdultsCount:    adultsCount,
		ChildrenCount:  childrenCount,
		PlusOneAllowed: plusOneAllowed,
		Guests:         guests,
		SentAt:         sentAt,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func (i *Invite) IsGroup() bool { return i.GroupName != "" }

// TotalAllowed is the largest head count a response may claim. The
// plus-one seat is on top of the declared capacity.
func (i *Invite) TotalAllowed() int {
	n := i.AdultsCount + i.ChildrenCount
	if i.PlusOneAllowed {
		n++
	}
	return n
}

// CheckPlusOne rejects a plus-one name on an invite that does not allow one.
func (i *Invite) CheckPlusOne(plusOneName string) error {
	if !isBlank(plusOneName) && !i.PlusOneAllowed {
		return Invalid("Plus one is not allowed for this invite")
	}
	return nil
}

// CheckCapacity rejects an attending response that claims more people
// than the invite admits.
func (i *Invite) CheckCapacity(isAttending bool, adults, children int) error {
	if !isAttending {
		return nil
	}
	if total := i.TotalAllowed(); adults+children > total {
		return Invalid("Cannot have more than %d attendees for this invite", total)
	}
	return nil
}

// DeclaredGuests returns the guests created with the invite.
func (i *Invite) DeclaredGuests() []Guest {
	out := make([]Guest, 0, len(i.Guests))
	for _, g := range i.Guests {
		if !g.IsPlusOne {
			out = append(out, g)
		}
	}
	return out
}

// PlusOne returns the materialized plus-one guest, if any.
func (i *Invite) PlusOne() *Guest {
	for k := range i.Guests {
		if i.Guests[k].IsPlusOne {
			return &i.Guests[k]
		}
	}
	return nil
}

// PrimaryContact is the first guest with an email address.
func (i *Invite) PrimaryContact() (Guest, bool) {
	for _, g := range i.Guests {
		if g.HasEmail() {
			return g, true
		}
	}
	return Guest{}, false
}

// DisplayName is the group name, or the first guest's name for an
// individual invite.
func (i *Invite) DisplayName() string {
	if i.GroupName != "" {
		return i.GroupName
	}
	if len(i.Guests) > 0 {
		return i.Guests[0].Name
	}
	return ""
}

// HasGuest reports whether guestID belongs to this invite.
func (i *Invite) HasGuest(guestID string) bool {
	for _, g := range i.Guests {
		if g.ID == guestID {
			return true
		}
	}
	return false
}

func (i *Invite) MarkSent(now time.Time) {
	i.SentAt = &now
	i.UpdatedAt = now
}
