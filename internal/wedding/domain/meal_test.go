package domain_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func TestGuestRef(t *testing.T) {
	t.Parallel()

	t.Run("concrete", func(t *testing.T) {
		ref := domain.ParseGuestRef("guest-1")
		require.False(t, ref.IsPlusOne())

		id, err := ref.Resolve("plus-1")
		require.NoError(t, err)
		require.Equal(t, "guest-1", id)
	})

	t.Run("sentinel resolves to plus one", func(t *testing.T) {
		ref := domain.ParseGuestRef(domain.PlusOneSentinel)
		require.True(t, ref.IsPlusOne())

		id, err := ref.Resolve("plus-1")
		require.NoError(t, err)
		require.Equal(t, "plus-1", id)
	})

	t.Run("sentinel without a plus one", func(t *testing.T) {
		_, err := domain.PlusOneRef().Resolve("")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty concrete id", func(t *testing.T) {
		_, err := domain.GuestRefTo("").Resolve("plus-1")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("string round trip", func(t *testing.T) {
		require.Equal(t, domain.PlusOneSentinel, domain.PlusOneRef().String())
		require.Equal(t, "guest-1", domain.ParseGuestRef("guest-1").String())
	})
}

func TestNewMealOption(t *testing.T) {
	t.Parallel()

	m, err := domain.NewMealOption(domain.MealOptionInput{
		CourseType:  domain.CourseMain,
		Name:        " Beef Wellington ",
		Description: ptr("  "),
	}, now)
	require.NoError(t, err)
	require.Equal(t, "Beef Wellington", m.Name)
	require.Nil(t, m.Description)
	require.True(t, m.IsAvailable)

	tests := []struct {
		name string
		in   domain.MealOptionInput
		msg  string
	}{
		{"bad course", domain.MealOptionInput{CourseType: "SOUP", Name: "x"}, "Invalid course type"},
		{"missing name", domain.MealOptionInput{CourseType: domain.CourseMain}, "Meal option name is required"},
		{"long name", domain.MealOptionInput{CourseType: domain.CourseMain, Name: strings.Repeat("n", 201)}, "Meal option name must be 200 characters or less"},
		{"long description", domain.MealOptionInput{CourseType: domain.CourseMain, Name: "n", Description: ptr(strings.Repeat("d", 1001))}, "Description must be 1000 characters or less"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewMealOption(tt.in, now)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestMealOption_UpdateAvailability(t *testing.T) {
	m, err := domain.NewMealOption(domain.MealOptionInput{CourseType: domain.CourseDessert, Name: "Pavlova"}, now)
	require.NoError(t, err)

	require.NoError(t, m.Update(domain.MealOptionInput{Name: "Pavlova", IsAvailable: ptr(false)}, now))
	require.False(t, m.IsAvailable)
	require.Equal(t, domain.CourseDessert, m.CourseType)
}

func TestNewMealSelection(t *testing.T) {
	s, err := domain.NewMealSelection("g1", "m1", domain.CourseStarter, now)
	require.NoError(t, err)
	require.Equal(t, "g1", s.GuestID)

	_, err = domain.NewMealSelection("", "m1", domain.CourseStarter, now)
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = domain.NewMealSelection("g1", "m1", "BRUNCH", now)
	require.ErrorIs(t, err, domain.ErrValidation)
}
