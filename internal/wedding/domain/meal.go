package domain

import (
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

type CourseType string

const (
	CourseStarter CourseType = "STARTER"
	CourseMain    CourseType = "MAIN"
	CourseDessert CourseType = "DESSERT"
)

// Courses lists every course in serving order.
var Courses = []CourseType{CourseStarter, CourseMain, CourseDessert}

func (c CourseType) Valid() bool {
	switch c {
	case CourseStarter, CourseMain, CourseDessert:
		return true
	}
	return false
}

// MealOption is a dish guests can pick for one course.
type MealOption struct {
	ID          string
	CourseType  CourseType
	Name        string
	Description *string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MealOptionInput carries admin supplied fields.
type MealOptionInput struct {
	CourseType  CourseType
	Name        string
	Description *string
	IsAvailable *bool
}

func NewMealOption(in MealOptionInput, now time.Time) (*MealOption, error) {
	if !in.CourseType.Valid() {
		return nil, Invalid("Invalid course type")
	}
	m := &MealOption{
		ID:          idx.NewString(),
		CourseType:  in.CourseType,
		IsAvailable: true,
		CreatedAt:   now,
	}
	if err := m.Update(in, now); err != nil {
		return nil, err
	}
	return m, nil
}

func ReconstituteMealOption(id string, course CourseType, name string, description *string, isAvailable bool, createdAt, updatedAt time.Time) *MealOption {
	return &MealOption{
		ID:          id,
		CourseType:  course,
		Name:        name,
		Description: description,
		IsAvailable: isAvailable,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Update applies name, description and availability. The course of an
// existing option is fixed; selections already point at it.
func (m *MealOption) Update(in MealOptionInput, now time.Time) error {
	if isBlank(in.Name) {
		return Invalid("Meal option name is required")
	}
	if runeLen(in.Name) > 200 {
		return Invalid("Meal option name must be 200 characters or less")
	}
	if in.Description != nil && runeLen(*in.Description) > 1000 {
		return Invalid("Description must be 1000 characters or less")
	}

	m.Name = CleanText(in.Name)
	m.Description = optionalText(in.Description)
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	m.UpdatedAt = now
	return nil
}

// PlusOneSentinel is the wire value of a guest reference that points at
// the invite's plus-one before that guest has an id.
const PlusOneSentinel = "PLUS_ONE"

// GuestRef identifies the guest a meal selection is for: either a
// concrete guest id or the invite's plus-one.
type GuestRef struct {
	plusOne bool
	id      string
}

// GuestRefTo refers to an existing guest.
func GuestRefTo(guestID string) GuestRef { return GuestRef{id: guestID} }

// PlusOneRef refers to whichever guest is the invite's plus-one once the
// submission has resolved it.
func PlusOneRef() GuestRef { return GuestRef{plusOne: true} }

// ParseGuestRef maps the wire form to a GuestRef.
func ParseGuestRef(s string) GuestRef {
	if s == PlusOneSentinel {
		return PlusOneRef()
	}
	return GuestRefTo(s)
}

func (r GuestRef) IsPlusOne() bool { return r.plusOne }

func (r GuestRef) String() string {
	if r.plusOne {
		return PlusOneSentinel
	}
	return r.id
}

// Resolve returns the concrete guest id. plusOneID is the id of the
// plus-one resolved for this submission, or empty when there is none.
func (r GuestRef) Resolve(plusOneID string) (string, error) {
	if !r.plusOne {
		if r.id == "" {
			return "", Invalid("Meal selection is missing a guest")
		}
		return r.id, nil
	}
	if plusOneID == "" {
		return "", Invalid("Meal selection references a plus one that was not provided")
	}
	return plusOneID, nil
}

// MealSelection is one guest's choice for one course.
type MealSelection struct {
	ID           string
	GuestID      string
	MealOptionID string
	CourseType   CourseType
	CreatedAt    time.Time
}

// MealSelectionInput is a selection as submitted, before the guest
// reference is resolved.
type MealSelectionInput struct {
	Guest        GuestRef
	MealOptionID string
	CourseType   CourseType
}

func (in MealSelectionInput) Validate() error {
	if !in.CourseType.Valid() {
		return Invalid("Invalid course type")
	}
	if isBlank(in.MealOptionID) {
		return Invalid("Meal option is required")
	}
	return nil
}

// NewMealSelection builds a selection for a resolved guest id.
func NewMealSelection(guestID, mealOptionID string, course CourseType, now time.Time) (*MealSelection, error) {
	if isBlank(guestID) {
		return nil, Invalid("Meal selection is missing a guest")
	}
	if !course.Valid() {
		return nil, Invalid("Invalid course type")
	}
	return &MealSelection{
		ID:           idx.NewString(),
		GuestID:      guestID,
		MealOptionID: mealOptionID,
		CourseType:   course,
		CreatedAt:    now,
	}, nil
}

func ReconstituteMealSelection(id, guestID, mealOptionID string, course CourseType, createdAt time.Time) MealSelection {
	return MealSelection{
		ID:           id,
		GuestID:      guestID,
		MealOptionID: mealOptionID,
		CourseType:   course,
		CreatedAt:    createdAt,
	}
}
