package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func tokenSequence(tokens ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(tokens) {
			return "", errors.New("out of tokens")
		}
		i++
		return tokens[i-1], nil
	}
}

func TestCreateIndividualAndGroup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &InviteService{Store: s, Clock: fixedClock(testNow), NewToken: tokenSequence("tok-1", "tok-2")}

	solo, err := svc.CreateIndividual(ctx, IndividualInviteInput{GuestName: " Alex ", Email: "alex@example.com", PlusOneAllowed: true})
	require.NoError(t, err)
	require.Equal(t, "tok-1", solo.Token)
	require.Equal(t, 1, solo.AdultsCount)
	require.Len(t, solo.Guests, 1)
	require.Equal(t, "Alex", solo.Guests[0].Name)

	group, err := svc.CreateGroup(ctx, GroupInviteInput{
		GroupName:     "The Smiths",
		AdultsCount:   2,
		ChildrenCount: 1,
		Guests: []domain.GuestInput{
			{Name: "Jane", Email: "jane@example.com"},
			{Name: "John"},
			{Name: "Junior"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "tok-2", group.Token)
	require.False(t, group.PlusOneAllowed)

	got, err := svc.FindByToken(ctx, "tok-2")
	require.NoError(t, err)
	require.Equal(t, group.ID, got.ID)
	require.Len(t, got.Guests, 3)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := &InviteService{Store: newTestStore(t), NewToken: tokenSequence("tok")}

	_, err := svc.CreateIndividual(ctx, IndividualInviteInput{GuestName: "", Email: "alex@example.com"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateGroup(ctx, GroupInviteInput{GroupName: "", AdultsCount: 1, Guests: []domain.GuestInput{{Name: "A", Email: "a@example.com"}}})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateRetriesTakenToken(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := &InviteService{Store: s, NewToken: tokenSequence("taken")}
	_, err := first.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Alex", Email: "alex@example.com"})
	require.NoError(t, err)

	second := &InviteService{Store: s, NewToken: tokenSequence("taken", "fresh")}
	inv, err := second.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)
	require.Equal(t, "fresh", inv.Token)

	tokens := make([]string, maxTokenAttempts)
	for i := range tokens {
		tokens[i] = "taken"
	}
	exhausted := &InviteService{Store: s, NewToken: tokenSequence(tokens...)}
	_, err = exhausted.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Kim", Email: "kim@example.com"})
	require.ErrorIs(t, err, ErrTokenExhausted)
}

func TestCreateUsesRealTokens(t *testing.T) {
	ctx := context.Background()
	svc := &InviteService{Store: newTestStore(t)}

	seen := map[string]bool{}
	for i := range 5 {
		inv, err := svc.CreateIndividual(ctx, IndividualInviteInput{GuestName: fmt.Sprintf("Guest %d", i), Email: "g@example.com"})
		require.NoError(t, err)
		require.NotEmpty(t, inv.Token)
		require.False(t, seen[inv.Token])
		seen[inv.Token] = true
	}
}

func TestListGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	invites := &InviteService{Store: s, Clock: fixedClock(testNow), NewToken: tokenSequence("a", "b")}
	rsvps := &RSVPService{Store: s, Clock: fixedClock(testNow)}

	answered, err := invites.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Alex", Email: "alex@example.com"})
	require.NoError(t, err)
	pending, err := invites.CreateIndividual(ctx, IndividualInviteInput{GuestName: "Sam", Email: "sam@example.com"})
	require.NoError(t, err)

	_, err = rsvps.Submit(ctx, SubmitInput{Token: "a", IsAttending: true, AdultsAttending: 1})
	require.NoError(t, err)

	list, err := invites.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	byID := map[string]InviteSummary{}
	for _, sum := range list {
		byID[sum.Invite.ID] = sum
	}
	require.True(t, byID[answered.ID].HasResponded())
	require.False(t, byID[pending.ID].HasResponded())

	got, err := invites.Get(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, "Sam", got.DisplayName())

	require.NoError(t, invites.Delete(ctx, answered.ID))
	_, err = invites.Get(ctx, answered.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, invites.Delete(ctx, answered.ID), domain.ErrNotFound)

	_, err = invites.FindByToken(ctx, "a")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
