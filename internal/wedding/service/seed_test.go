package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
settings:
  partner1_name: Alex
  partner2_name: Jordan
  wedding_date: 21 November 2026
  wedding_time: 3:00 PM
  venue_name: The Boathouse
  venue_address: 1 River Rd
  dress_code: Cocktail
meal_options:
  - course: STARTER
    name: Soup
  - course: MAIN
    name: Beef
    description: Slow roasted
  - course: MAIN
    name: Fish
    available: false
questions:
  - text: Song request?
    type: TEXT
  - text: Shuttle?
    type: SINGLE_CHOICE
    options: [Yes, No]
    required: true
    display_order: 1
templates:
  - name: Classic
    type: invite
    subject: "{{partner1_name}} & {{partner2_name}}"
    html_file: invite.html
`

func writeSeed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.yaml"), []byte(seedYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invite.html"), []byte("<p>Hi {{guest_name}}</p>"), 0o600))
	return filepath.Join(dir, "seed.yaml")
}

func TestParseSeed(t *testing.T) {
	f, err := ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	require.Nil(t, f.Settings)
	require.Empty(t, f.MealOptions)

	_, err = ParseSeed(strings.NewReader("meal_options:\n  - course: MAIN\n    nam: Beef\n"))
	require.ErrorContains(t, err, "parse seed")
}

func TestLoadSeedFileInlinesHTML(t *testing.T) {
	f, err := LoadSeedFile(writeSeed(t))
	require.NoError(t, err)
	require.Len(t, f.Templates, 1)
	require.Equal(t, "<p>Hi {{guest_name}}</p>", f.Templates[0].HTML)
	require.Equal(t, []string{"Yes", "No"}, f.Questions[1].Options)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSeedApplyIsRepeatable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &SeedService{Store: s, Clock: fixedClock(testNow)}

	f, err := LoadSeedFile(writeSeed(t))
	require.NoError(t, err)

	rep, err := svc.Apply(ctx, f)
	require.NoError(t, err)
	require.Equal(t, SeedReport{Created: 6, Settings: true}, rep)

	rep, err = svc.Apply(ctx, f)
	require.NoError(t, err)
	require.Equal(t, SeedReport{Updated: 6, Settings: true}, rep)

	options, err := s.MealOptions().FindAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, options, 3)

	available, err := s.MealOptions().FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, available, 2)

	questions, err := s.Questions().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	tmpl, err := s.EmailTemplates().FindActiveByType(ctx, domain.TemplateInvite)
	require.NoError(t, err)
	require.Equal(t, "Classic", tmpl.Name)

	ws, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "The Boathouse", ws.VenueName)
	require.NotNil(t, ws.DressCode)
	require.Equal(t, "Cocktail", *ws.DressCode)
}

func TestSeedApplyRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &SeedService{Store: s, Clock: fixedClock(testNow)}

	f := &SeedFile{MealOptions: []SeedMealOption{
		{Course: domain.CourseStarter, Name: "Soup"},
		{Course: "BRUNCH", Name: "Eggs"},
	}}
	_, err := svc.Apply(ctx, f)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorContains(t, err, `meal option "Eggs"`)

	options, err := s.MealOptions().FindAll(ctx, false)
	require.NoError(t, err)
	require.Empty(t, options)
}
