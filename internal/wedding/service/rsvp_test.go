package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type rsvpFixture struct {
	store   *sqlite.Store
	svc     *RSVPService
	invite  *domain.Invite
	starter *domain.MealOption
	main    *domain.MealOption
	fish    *domain.MealOption
}

func newRSVPFixture(t *testing.T, plusOne bool) rsvpFixture {
	t.Helper()
	ctx := context.Background()
	s := newTestStore(t)

	invites := &InviteService{Store: s, Clock: fixedClock(testNow), NewToken: func() (string, error) { return "solo-token", nil }}
	inv, err := invites.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Alex", Email: "alex@example.com", PlusOneAllowed: plusOne})
	require.NoError(t, err)

	return rsvpFixture{
		store:   s,
		svc:     &RSVPService{Store: s, Clock: fixedClock(testNow)},
		invite:  inv,
		starter: mustMealOption(t, s, domain.CourseStarter, "Soup", true),
		main:    mustMealOption(t, s, domain.CourseMain, "Beef", true),
		fish:    mustMealOption(t, s, domain.CourseMain, "Fish", false),
	}
}

func (f rsvpFixture) guestID() string { return f.invite.Guests[0].ID }

func TestSubmitCreatesThenUpdatesSameRSVP(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, false)

	first, err := f.svc.Submit(ctx, SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1})
	require.NoError(t, err)
	require.NotEmpty(t, first.RSVPID)
	require.Empty(t, first.PlusOneGuestID)

	diet := "  vegetarian  "
	second, err := f.svc.Submit(ctx, SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, DietaryRequirements: &diet})
	require.NoError(t, err)
	require.Equal(t, first.RSVPID, second.RSVPID)

	got, err := f.store.RSVPs().FindByInviteID(ctx, f.invite.ID)
	require.NoError(t, err)
	require.Equal(t, first.RSVPID, got.ID)
	require.NotNil(t, got.DietaryRequirements)
	require.Equal(t, "vegetarian", *got.DietaryRequirements)
}

func TestSubmitUnknownToken(t *testing.T) {
	f := newRSVPFixture(t, false)

	_, err := f.svc.Submit(context.Background(), SubmitInput{Token: "nope", IsAttending: true, AdultsAttending: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.EqualError(t, err, domain.MsgInviteNotFound)
}

func TestSubmitRejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name    string
		plusOne bool
		input   func(f rsvpFixture) SubmitInput
		message string
	}{
		{
			name:    "over capacity with plus one",
			plusOne: true,
			input: func(rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 3, PlusOneName: "Sam"}
			},
			message: "Cannot have more than 2 attendees for this invite",
		},
		{
			name: "over capacity without plus one",
			input: func(rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, ChildrenAttending: 1}
			},
			message: "Cannot have more than 1 attendees for this invite",
		},
		{
			name: "plus one not allowed",
			input: func(rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, PlusOneName: "Sam"}
			},
			message: "Plus one is not allowed for this invite",
		},
		{
			name: "nobody attending",
			input: func(rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true}
			},
			message: "At least one person must be attending",
		},
		{
			name: "unknown meal option",
			input: func(f rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, MealSelections: []domain.MealSelectionInput{
					{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: "missing", CourseType: domain.CourseMain},
				}}
			},
			message: "Meal option not found",
		},
		{
			name: "course mismatch",
			input: func(f rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, MealSelections: []domain.MealSelectionInput{
					{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.starter.ID, CourseType: domain.CourseMain},
				}}
			},
			message: `Meal option "Soup" is not a main course`,
		},
		{
			name: "guest from another invite",
			input: func(f rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, MealSelections: []domain.MealSelectionInput{
					{Guest: domain.GuestRefTo("stranger"), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
				}}
			},
			message: "Meal selection references a guest that is not on this invite",
		},
		{
			name:    "plus one sentinel without plus one",
			plusOne: true,
			input: func(f rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, MealSelections: []domain.MealSelectionInput{
					{Guest: domain.PlusOneRef(), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
				}}
			},
			message: "Meal selection references a plus one that was not provided",
		},
		{
			name: "two mains for one guest",
			input: func(f rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, MealSelections: []domain.MealSelectionInput{
					{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
					{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.fish.ID, CourseType: domain.CourseMain},
				}}
			},
			message: "Only one main can be selected per guest",
		},
		{
			name: "unknown question",
			input: func(rsvpFixture) SubmitInput {
				return SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, QuestionResponses: []domain.QuestionResponseInput{
					{QuestionID: "missing", ResponseText: "yes"},
				}}
			},
			message: "Question not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newRSVPFixture(t, tt.plusOne)

			_, err := f.svc.Submit(ctx, tt.input(f))
			require.ErrorIs(t, err, domain.ErrValidation)
			require.EqualError(t, err, tt.message)

			rsvps, err := f.store.RSVPs().FindByInviteIDs(ctx, []string{f.invite.ID})
			require.NoError(t, err)
			require.Empty(t, rsvps)

			guests, err := f.store.Guests().FindByInviteID(ctx, f.invite.ID)
			require.NoError(t, err)
			require.Len(t, guests, 1)
		})
	}
}

func TestSubmitPlusOneLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, true)

	// 1. Add a plus-one and pick their main through the sentinel.
	res, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 2, PlusOneName: "Sam",
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
			{Guest: domain.PlusOneRef(), MealOptionID: f.fish.ID, CourseType: domain.CourseMain},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.PlusOneGuestID)

	plusOne, err := f.store.Guests().FindPlusOneByInviteID(ctx, f.invite.ID)
	require.NoError(t, err)
	require.Equal(t, res.PlusOneGuestID, plusOne.ID)
	require.Equal(t, "Sam", plusOne.Name)

	sels, err := f.store.MealSelections().FindByGuestID(ctx, plusOne.ID)
	require.NoError(t, err)
	require.Len(t, sels, 1)
	require.Equal(t, f.fish.ID, sels[0].MealOptionID)

	// 2. Rename keeps the same guest, and its id is accepted directly.
	again, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 2, PlusOneName: "Samantha",
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(plusOne.ID), MealOptionID: f.starter.ID, CourseType: domain.CourseStarter},
		},
	})
	require.NoError(t, err)
	require.Equal(t, plusOne.ID, again.PlusOneGuestID)
	require.Equal(t, res.RSVPID, again.RSVPID)

	renamed, err := f.store.Guests().FindByID(ctx, plusOne.ID)
	require.NoError(t, err)
	require.Equal(t, "Samantha", renamed.Name)

	all, err := f.store.MealSelections().FindByInviteID(ctx, f.invite.ID)
	require.NoError(t, err)
	require.Len(t, all, 1, "a supplied list replaces every earlier selection")
	require.Equal(t, f.starter.ID, all[0].MealOptionID)

	// 3. Dropping the name removes the plus-one and their selections.
	last, err := f.svc.Submit(ctx, SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1})
	require.NoError(t, err)
	require.Empty(t, last.PlusOneGuestID)

	_, err = f.store.Guests().FindPlusOneByInviteID(ctx, f.invite.ID)
	require.Error(t, err)

	all, err = f.store.MealSelections().FindByInviteID(ctx, f.invite.ID)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestSubmitWithoutMealListKeepsSelections(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, false)

	_, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 1,
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1})
	require.NoError(t, err)

	sels, err := f.store.MealSelections().FindByGuestID(ctx, f.guestID())
	require.NoError(t, err)
	require.Len(t, sels, 1)

	_, err = f.svc.Submit(ctx, SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1, MealSelections: []domain.MealSelectionInput{}})
	require.NoError(t, err)

	sels, err = f.store.MealSelections().FindByGuestID(ctx, f.guestID())
	require.NoError(t, err)
	require.Empty(t, sels)
}

func TestSubmitDeclineClearsSelectionsKeepsResponses(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, true)

	q, err := domain.NewCustomQuestion(domain.CustomQuestionInput{QuestionText: "Song request?", QuestionType: domain.QuestionText}, testNow)
	require.NoError(t, err)
	require.NoError(t, f.store.Questions().Create(ctx, q))

	res, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 2, PlusOneName: "Sam",
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
			{Guest: domain.PlusOneRef(), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
		},
		QuestionResponses: []domain.QuestionResponseInput{{QuestionID: q.ID, ResponseText: "September"}},
	})
	require.NoError(t, err)

	declined, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: false, PlusOneName: "Sam",
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
		},
	})
	require.NoError(t, err)
	require.Equal(t, res.RSVPID, declined.RSVPID)
	require.Empty(t, declined.PlusOneGuestID)

	sels, err := f.store.MealSelections().FindByInviteID(ctx, f.invite.ID)
	require.NoError(t, err)
	require.Empty(t, sels)

	_, err = f.store.Guests().FindPlusOneByInviteID(ctx, f.invite.ID)
	require.Error(t, err)

	got, err := f.store.RSVPs().FindByID(ctx, res.RSVPID)
	require.NoError(t, err)
	require.False(t, got.IsAttending)

	responses, err := f.store.QuestionResponses().FindByRSVPID(ctx, res.RSVPID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
}

func TestSubmitReplacesResponsesAndDropsBlank(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, false)

	song, err := domain.NewCustomQuestion(domain.CustomQuestionInput{QuestionText: "Song request?", QuestionType: domain.QuestionText}, testNow)
	require.NoError(t, err)
	require.NoError(t, f.store.Questions().Create(ctx, song))
	bus, err := domain.NewCustomQuestion(domain.CustomQuestionInput{
		QuestionText: "Need the shuttle?", QuestionType: domain.QuestionSingleChoice, Options: []string{"Yes", "No"}, DisplayOrder: 1,
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, f.store.Questions().Create(ctx, bus))

	res, err := f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 1,
		QuestionResponses: []domain.QuestionResponseInput{
			{QuestionID: song.ID, ResponseText: "September"},
			{QuestionID: bus.ID, ResponseText: "Yes"},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 1,
		QuestionResponses: []domain.QuestionResponseInput{
			{QuestionID: song.ID, ResponseText: "Dancing Queen"},
			{QuestionID: bus.ID, ResponseText: "   "},
		},
	})
	require.NoError(t, err)

	responses, err := f.store.QuestionResponses().FindByRSVPID(ctx, res.RSVPID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.Equal(t, song.ID, responses[0].QuestionID)
	require.Equal(t, "Dancing Queen", responses[0].ResponseText)
}

func TestSubmitConcurrentKeepsOneRSVP(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, true)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[string]bool{}
	)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := SubmitInput{Token: "solo-token", IsAttending: true, AdultsAttending: 1}
			if i%2 == 0 {
				in.AdultsAttending = 2
				in.PlusOneName = "Sam"
			}
			res, err := f.svc.Submit(ctx, in)
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			ids[res.RSVPID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, ids, 1)

	guests, err := f.store.Guests().FindByInviteID(ctx, f.invite.ID)
	require.NoError(t, err)
	require.LessOrEqual(t, len(guests), 2)
}

func TestView(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, false)

	view, err := f.svc.View(ctx, "solo-token")
	require.NoError(t, err)
	require.False(t, view.HasResponded())
	require.Nil(t, view.Settings)
	require.Empty(t, view.MealSelections)
	require.Len(t, view.MealOptions, 2, "unavailable options are hidden")

	settings, err := domain.NewWeddingSettings(domain.WeddingSettings{
		Partner1Name: "Alex", Partner2Name: "Jordan", WeddingDate: "2026-11-21",
		WeddingTime: "15:00", VenueName: "The Boathouse", VenueAddress: "1 River Rd",
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, f.store.Settings().Save(ctx, settings))

	_, err = f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 1,
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
		},
	})
	require.NoError(t, err)

	view, err = f.svc.View(ctx, "solo-token")
	require.NoError(t, err)
	require.True(t, view.HasResponded())
	require.Len(t, view.MealSelections, 1)
	require.NotNil(t, view.Settings)
	require.Equal(t, "The Boathouse", view.Settings.VenueName)

	_, err = f.svc.View(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
