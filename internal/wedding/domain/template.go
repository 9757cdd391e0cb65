package domain

import (
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

type TemplateType string

const (
	TemplateInvite   TemplateType = "invite"
	TemplateThankYou TemplateType = "thank_you"
)

func (t TemplateType) Valid() bool { return t == TemplateInvite || t == TemplateThankYou }

// EmailTemplate is an HTML email with {{variable}} placeholders.
type EmailTemplate struct {
	ID           string
	Name         string
	TemplateType TemplateType
	Subject      string
	HTMLContent  string
	HeroImageURL *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EmailTemplateInput struct {
	Name         string
	TemplateType TemplateType
	Subject      string
	HTMLContent  string
	HeroImageURL *string
}

// NewEmailTemplate creates an active template.
func NewEmailTemplate(in EmailTemplateInput, now time.Time) (*EmailTemplate, error) {
	if isBlank(in.Name) {
		return nil, Invalid("Template name is required")
	}
	if !in.TemplateType.Valid() {
		return nil, Invalid(`Template type must be either "invite" or "thank_you"`)
	}

	t := &EmailTemplate{
		ID:           idx.NewString(),
		Name:         CleanText(in.Name),
		TemplateType: in.TemplateType,
		IsActive:     true,
		CreatedAt:    now,
	}
	if err := t.UpdateContent(in, now); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstituteEmailTemplate(
	id, name string,
	tt TemplateType,
	subject, html string,
	hero *string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *EmailTemplate {
	return &EmailTemplate{
		ID:           id,
		Name:         name,
		TemplateType: tt,
		Subject:      subject,
		HTMLContent:  html,
		HeroImageURL: hero,
		IsActive:     isActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// UpdateContent replaces subject, body and hero image. Name and type are
// left alone.
func (t *EmailTemplate) UpdateContent(in EmailTemplateInput, now time.Time) error {
	if isBlank(in.Subject) {
		return Invalid("Subject is required")
	}
	if isBlank(in.HTMLContent) {
		return Invalid("HTML content is required")
	}
	hero := optionalText(in.HeroImageURL)
	if hero != nil && !isAbsoluteHTTPURL(*hero) {
		return Invalid("Invalid hero image URL format")
	}

	t.Subject = in.Subject
	t.HTMLContent = in.HTMLContent
	t.HeroImageURL = hero
	t.UpdatedAt = now
	return nil
}

func (t *EmailTemplate) Activate(now time.Time) {
	t.IsActive = true
	t.UpdatedAt = now
}

func (t *EmailTemplate) Deactivate(now time.Time) {
	t.IsActive = false
	t.UpdatedAt = now
}
