package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func TestOverviewEmpty(t *testing.T) {
	svc := &ReportService{Store: newTestStore(t)}

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, Overview{}, *o)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture(t, true)

	invites := &InviteService{Store: f.store, Clock: fixedClock(testNow), NewToken: tokenSequence("grp-token", "pending-token")}
	group, err := invites.CreateGroup(ctx, GroupInviteInput{
		GroupName: "The Smiths", AdultsCount: 2,
		Guests: []domain.GuestInput{{Name: "Jane", Email: "jane@example.com"}, {Name: "John"}},
	})
	require.NoError(t, err)
	_, err = invites.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)
	require.NoError(t, f.store.Invites().MarkSent(ctx, f.invite.ID, testNow))

	// Alex attends with a plus-one, both on soup.
	_, err = f.svc.Submit(ctx, SubmitInput{
		Token: "solo-token", IsAttending: true, AdultsAttending: 2, PlusOneName: "Robin",
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(f.guestID()), MealOptionID: f.starter.ID, CourseType: domain.CourseStarter},
			{Guest: domain.PlusOneRef(), MealOptionID: f.starter.ID, CourseType: domain.CourseStarter},
		},
	})
	require.NoError(t, err)

	// The Smiths chose beef, then declined; their picks must not count.
	_, err = f.svc.Submit(ctx, SubmitInput{
		Token: "grp-token", IsAttending: true, AdultsAttending: 2,
		MealSelections: []domain.MealSelectionInput{
			{Guest: domain.GuestRefTo(group.Guests[0].ID), MealOptionID: f.main.ID, CourseType: domain.CourseMain},
		},
	})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, SubmitInput{Token: "grp-token", IsAttending: false})
	require.NoError(t, err)

	o, err := (&ReportService{Store: f.store}).Overview(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, o.TotalInvites)
	require.Equal(t, 1, o.InvitesSent)
	require.Equal(t, 2, o.TotalRSVPs)
	require.Equal(t, 1, o.Attending)
	require.Equal(t, 1, o.NotAttending)
	require.Equal(t, 1, o.Pending)
	require.Equal(t, 2, o.TotalGuestsAttending)

	require.Equal(t, []MealTally{{MealOptionID: f.starter.ID, Name: "Soup", Count: 2}}, o.MealCounts.Starter)
	require.Equal(t, []MealTally{
		{MealOptionID: f.main.ID, Name: "Beef", Count: 0},
		{MealOptionID: f.fish.ID, Name: "Fish", Count: 0},
	}, o.MealCounts.Main)
	require.Empty(t, o.MealCounts.Dessert)
}
