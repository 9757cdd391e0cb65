package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMealOptionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &CatalogService{Store: s, Clock: fixedClock(testNow)}

	soup, err := svc.CreateMealOption(ctx, domain.MealOptionInput{CourseType: domain.CourseStarter, Name: "Soup"})
	require.NoError(t, err)
	require.True(t, soup.IsAvailable)

	_, err = svc.CreateMealOption(ctx, domain.MealOptionInput{CourseType: "BRUNCH", Name: "Eggs"})
	require.ErrorIs(t, err, domain.ErrValidation)

	beef, err := svc.CreateMealOption(ctx, domain.MealOptionInput{CourseType: domain.CourseMain, Name: "Beef"})
	require.NoError(t, err)

	updated, err := svc.UpdateMealOption(ctx, soup.ID, MealOptionPatch{Description: ptr("Pumpkin"), IsAvailable: ptr(false)})
	require.NoError(t, err)
	require.Equal(t, "Soup", updated.Name)
	require.Equal(t, "Pumpkin", *updated.Description)
	require.False(t, updated.IsAvailable)

	_, err = svc.UpdateMealOption(ctx, soup.ID, MealOptionPatch{Name: ptr("  ")})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateMealOption(ctx, "missing", MealOptionPatch{})
	require.ErrorIs(t, err, domain.ErrNotFound)

	available, err := svc.ListMealOptions(ctx, true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, beef.ID, available[0].ID)

	all, err := svc.ListMealOptions(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, soup.ID, all[0].ID, "starters first")

	require.NoError(t, svc.DeleteMealOption(ctx, soup.ID))
	require.ErrorIs(t, svc.DeleteMealOption(ctx, soup.ID), domain.ErrNotFound)
}

func TestDeleteChosenMealOption(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, false)
	svc := &CatalogService{Store: f.store, Clock: fixedClock(testNow)}

	_, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 1,
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
		},
	})
	require.NoError(t, err)

	err = svc.DeleteMealOption(ctx, f.main.ID)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.EqualError(t, err, "Meal option has been selected by guests and cannot be deleted")
}

func TestQuestionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := &CatalogService{Store: newTestStore(t), Clock: fixedClock(testNow)}

	_, err := svc.CreateQuestion(ctx, domain.CustomQuestionInput{
		QuestionText: "Shuttle?", QuestionType: domain.QuestionSingleChoice, Options: []string{"Yes"},
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	shuttle, err := svc.CreateQuestion(ctx, domain.CustomQuestionInput{
		QuestionText: "Shuttle?", QuestionType: domain.QuestionSingleChoice, Options: []string{"Yes", "No"}, DisplayOrder: 2,
	})
	require.NoError(t, err)
	song, err := svc.CreateQuestion(ctx, domain.CustomQuestionInput{
		QuestionText: "Song request?", QuestionType: domain.QuestionText, DisplayOrder: 1,
	})
	require.NoError(t, err)

	list, err := svc.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, song.ID, list[0].ID)

	updated, err := svc.UpdateQuestion(ctx, shuttle.ID, QuestionPatch{DisplayOrder: ptr(0), IsRequired: ptr(true)})
	require.NoError(t, err)
	require.Equal(t, []string{"Yes", "No"}, updated.Options)
	require.True(t, updated.IsRequired)

	list, err = svc.ListQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, shuttle.ID, list[0].ID)

	_, err = svc.UpdateQuestion(ctx, shuttle.ID, QuestionPatch{DisplayOrder: ptr(-1)})
	require.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, svc.DeleteQuestion(ctx, song.ID))
	require.ErrorIs(t, svc.DeleteQuestion(ctx, song.ID), domain.ErrNotFound)
	_, err = svc.UpdateQuestion(ctx, song.ID, QuestionPatch{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	svc := &SettingsService{Store: newTestStore(t), Clock: fixedClock(testNow)}

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = svc.Update(ctx, domain.WeddingSettings{Partner1Name: "Alex"})
	require.ErrorIs(t, err, domain.ErrValidation)

	in := domain.WeddingSettings{
		Partner1Name: "Alex", Partner2Name: "Jordan", WeddingDate: "2026-11-21",
		WeddingTime: "15:00", VenueName: "The Boathouse", VenueAddress: "1 River Rd",
		DressCode: ptr("Cocktail"),
	}
	_, err = svc.Update(ctx, in)
	require.NoError(t, err)

	in.VenueName = "The Glasshouse"
	in.DressCode = nil
	_, err = svc.Update(ctx, in)
	require.NoError(t, err)

	got, err = svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "The Glasshouse", got.VenueName)
	require.Nil(t, got.DressCode)
}
