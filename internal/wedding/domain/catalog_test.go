package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func TestNewCustomQuestion(t *testing.T) {
	t.Parallel()

	q, err := domain.NewCustomQuestion(domain.CustomQuestionInput{
		QuestionText: "Song request?",
		QuestionType: domain.QuestionText,
		Options:      []string{"ignored"},
	}, now)
	require.NoError(t, err)
	require.Nil(t, q.Options)

	q, err = domain.NewCustomQuestion(domain.CustomQuestionInput{
		QuestionText: "Shuttle?",
		QuestionType: domain.QuestionSingleChoice,
		Options:      []string{"Yes", " ", "No"},
		DisplayOrder: 2,
	}, now)
	require.NoError(t, err)
	require.Equal(t, []string{"Yes", "No"}, q.Options)

	tests := []struct {
		name string
		in   domain.CustomQuestionInput
		msg  string
	}{
		{"bad type", domain.CustomQuestionInput{QuestionText: "q", QuestionType: "SCALE"}, "Invalid question type"},
		{"missing text", domain.CustomQuestionInput{QuestionType: domain.QuestionText}, "Question text is required"},
		{"long text", domain.CustomQuestionInput{QuestionText: strings.Repeat("q", 501), QuestionType: domain.QuestionText}, "Question text must be 500 characters or less"},
		{"negative order", domain.CustomQuestionInput{QuestionText: "q", QuestionType: domain.QuestionText, DisplayOrder: -1}, "Display order must be a positive number"},
		{"single choice one option", domain.CustomQuestionInput{QuestionText: "q", QuestionType: domain.QuestionSingleChoice, Options: []string{"a"}}, "Single choice questions must have at least 2 options"},
		{"multi choice blank options", domain.CustomQuestionInput{QuestionText: "q", QuestionType: domain.QuestionMultipleChoice, Options: []string{"a", ""}}, "Multiple choice questions must have at least 2 options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCustomQuestion(tt.in, now)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestQuestionResponseInput_IsEmpty(t *testing.T) {
	require.True(t, domain.QuestionResponseInput{ResponseText: "  \n"}.IsEmpty())
	require.False(t, domain.QuestionResponseInput{ResponseText: "x"}.IsEmpty())

	_, err := domain.NewQuestionResponse("r", domain.QuestionResponseInput{QuestionID: "q", ResponseText: " "}, now)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewWeddingSettings(t *testing.T) {
	t.Parallel()

	valid := domain.WeddingSettings{
		Partner1Name: "Alex", Partner2Name: "Sam",
		WeddingDate: "2026-11-21", WeddingTime: "15:00",
		VenueName: "The Boathouse", VenueAddress: "1 River Rd",
		DressCode: ptr(" "), RegistryURL: ptr("https://registry.example.com"),
	}

	s, err := domain.NewWeddingSettings(valid, now)
	require.NoError(t, err)
	require.Nil(t, s.DressCode)

	vars := s.TemplateVars()
	require.Equal(t, "Alex", vars["partner1_name"])
	require.Equal(t, "", vars["dress_code"])
	require.Equal(t, "https://registry.example.com", vars["registry_url"])

	missing := valid
	missing.VenueAddress = ""
	_, err = domain.NewWeddingSettings(missing, now)
	requireValidation(t, err, "Venue address is required")

	badURL := valid
	badURL.RegistryURL = ptr("registry")
	_, err = domain.NewWeddingSettings(badURL, now)
	requireValidation(t, err, "Invalid registry URL format")
}

func TestNewEmailTemplate(t *testing.T) {
	t.Parallel()

	in := domain.EmailTemplateInput{
		Name:         "Invite",
		TemplateType: domain.TemplateInvite,
		Subject:      "You're invited",
		HTMLContent:  "<p>{{guest_name}}</p>",
		HeroImageURL: ptr("https://cdn.example.com/hero.jpg"),
	}
	tpl, err := domain.NewEmailTemplate(in, now)
	require.NoError(t, err)
	require.True(t, tpl.IsActive)

	tpl.Deactivate(now.Add(time.Minute))
	require.False(t, tpl.IsActive)
	tpl.Activate(now.Add(2 * time.Minute))
	require.True(t, tpl.IsActive)

	tests := []struct {
		name   string
		mutate func(*domain.EmailTemplateInput)
		msg    string
	}{
		{"missing name", func(i *domain.EmailTemplateInput) { i.Name = "" }, "Template name is required"},
		{"bad type", func(i *domain.EmailTemplateInput) { i.TemplateType = "reminder" }, `Template type must be either "invite" or "thank_you"`},
		{"missing subject", func(i *domain.EmailTemplateInput) { i.Subject = " " }, "Subject is required"},
		{"missing html", func(i *domain.EmailTemplateInput) { i.HTMLContent = "" }, "HTML content is required"},
		{"bad hero url", func(i *domain.EmailTemplateInput) { i.HeroImageURL = ptr("not a url") }, "Invalid hero image URL format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := in
			tt.mutate(&cp)
			_, err := domain.NewEmailTemplate(cp, now)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestNewAdminUser(t *testing.T) {
	t.Parallel()

	u, err := domain.NewAdminUser("  Alex_Admin ", "Alex@Example.COM", "$argon2id$...", now)
	require.NoError(t, err)
	require.Equal(t, "alex_admin", u.Username)
	require.Equal(t, "alex@example.com", u.Email)
	require.True(t, u.IsActive)
	require.Nil(t, u.LastLoginAt)

	u.MarkLoggedIn(now)
	require.Equal(t, now, *u.LastLoginAt)

	tests := []struct {
		name, username, email, msg string
	}{
		{"missing username", "", "a@example.com", "Username is required"},
		{"short username", "ab", "a@example.com", "Username must be at least 3 characters long"},
		{"bad characters", "alex-admin", "a@example.com", "Username must contain only alphanumeric characters and underscores"},
		{"bad email", "alex", "nope", "Invalid email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewAdminUser(tt.username, tt.email, "hash", now)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	s, err := domain.NewSession("admin", domain.DefaultSessionTTL, now)
	require.NoError(t, err)
	require.Equal(t, now.Add(24*time.Hour), s.ExpiresAt)
	require.False(t, s.IsExpired(now))
	require.True(t, s.IsExpired(s.ExpiresAt))

	for _, ttl := range []time.Duration{time.Minute, 169 * time.Hour} {
		_, err := domain.NewSession("admin", ttl, now)
		requireValidation(t, err, "Session expiry must be between 1 and 168 hours")
	}
}

func TestErrors(t *testing.T) {
	err := domain.NotFound("invite", domain.MsgInviteNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NotErrorIs(t, err, domain.ErrValidation)
	require.EqualError(t, err, "Invite not found")

	require.EqualError(t, domain.NotFound("meal option", ""), "meal option not found")
}
