package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func TestTemplateActivation(t *testing.T) {
	ctx := context.Background()
	now := testNow
	s := newTestStore(t)
	svc := &TemplateService{Store: s, Clock: func() time.Time { return now }}

	classic, err := svc.Create(ctx, domain.EmailTemplateInput{
		Name: "Classic", TemplateType: domain.TemplateInvite, Subject: "You're invited", HTMLContent: "<p>{{guest_name}}</p>",
	})
	require.NoError(t, err)
	require.True(t, classic.IsActive)

	now = now.Add(time.Minute)
	modern, err := svc.Create(ctx, domain.EmailTemplateInput{
		Name: "Modern", TemplateType: domain.TemplateInvite, Subject: "Save the date", HTMLContent: "<p>hi</p>",
	})
	require.NoError(t, err)

	thanks, err := svc.Create(ctx, domain.EmailTemplateInput{
		Name: "Thanks", TemplateType: domain.TemplateThankYou, Subject: "Thank you", HTMLContent: "<p>ta</p>",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, classic.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive, "a new template replaces the active one of its type")

	active, err := s.EmailTemplates().FindActiveByType(ctx, domain.TemplateInvite)
	require.NoError(t, err)
	require.Equal(t, modern.ID, active.ID)

	now = now.Add(time.Minute)
	_, err = svc.SetActive(ctx, classic.ID, true)
	require.NoError(t, err)

	active, err = s.EmailTemplates().FindActiveByType(ctx, domain.TemplateInvite)
	require.NoError(t, err)
	require.Equal(t, classic.ID, active.ID)

	got, err = svc.Get(ctx, modern.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	got, err = svc.Get(ctx, thanks.ID)
	require.NoError(t, err)
	require.True(t, got.IsActive, "other types are untouched")

	_, err = svc.SetActive(ctx, classic.ID, false)
	require.NoError(t, err)
	_, err = s.EmailTemplates().FindActiveByType(ctx, domain.TemplateInvite)
	require.Error(t, err)

	_, err = svc.SetActive(ctx, "missing", true)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := &TemplateService{Store: newTestStore(t), Clock: fixedClock(testNow)}

	tmpl, err := svc.Create(ctx, domain.EmailTemplateInput{
		Name: "Classic", TemplateType: domain.TemplateInvite, Subject: "Hi", HTMLContent: "<p>x</p>",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.EmailTemplateInput{
		Name: "Classic", TemplateType: domain.TemplateInvite, Subject: "Hi", HTMLContent: "<p>x</p>",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	updated, err := svc.Update(ctx, tmpl.ID, domain.EmailTemplateInput{
		Name: "ignored", Subject: "Hello", HTMLContent: "<p>y</p>", HeroImageURL: ptr("https://cdn.example.com/hero.jpg"),
	})
	require.NoError(t, err)
	require.Equal(t, "Classic", updated.Name)
	require.Equal(t, "Hello", updated.Subject)
	require.Equal(t, "https://cdn.example.com/hero.jpg", *updated.HeroImageURL)

	_, err = svc.Update(ctx, tmpl.ID, domain.EmailTemplateInput{Subject: "Hello", HTMLContent: "x", HeroImageURL: ptr("ftp://nope")})
	require.ErrorIs(t, err, domain.ErrValidation)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, tmpl.ID))
	require.ErrorIs(t, svc.Delete(ctx, tmpl.ID), domain.ErrNotFound)
	_, err = svc.Update(ctx, tmpl.ID, domain.EmailTemplateInput{Subject: "a", HTMLContent: "b"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
