package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

const msgTemplateNotFound = "Email template not found"

// TemplateService manages email templates. At most one template per type
// is active at a time.
type TemplateService struct {
	Store store.Store
	Clock Clock
}

// Create stores a new template and makes it the active one of its type.
func (s *TemplateService) Create(ctx context.Context, in domain.EmailTemplateInput) (*domain.EmailTemplate, error) {
	log := slogx.FromContext(ctx)

	t, err := domain.NewEmailTemplate(in, s.Clock.Now())
	if err != nil {
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.EmailTemplates().Create(ctx, t); err != nil {
			return err
		}
		return tx.EmailTemplates().DeactivateOthers(ctx, t.TemplateType, t.ID, t.UpdatedAt)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return nil, domain.Invalid("A template named %q already exists", t.Name)
	}
	if err != nil {
		log.Error("failed to create email template", slog.Any("error", err))
		return nil, err
	}

	log.Info("email template created", slog.String("template_id", t.ID), slog.String("type", string(t.TemplateType)))
	return t, nil
}

// Update replaces subject, body and hero image.
func (s *TemplateService) Update(ctx context.Context, id string, in domain.EmailTemplateInput) (*domain.EmailTemplate, error) {
	log := slogx.FromContext(ctx)

	t, err := s.Store.EmailTemplates().FindByID(ctx, id)
	if err != nil {
		return nil, mapMissing(err, "email template", msgTemplateNotFound)
	}
	if err := t.UpdateContent(in, s.Clock.Now()); err != nil {
		return nil, err
	}
	if err := s.Store.EmailTemplates().Update(ctx, t); err != nil {
		log.Error("failed to update email template", slog.String("template_id", id), slog.Any("error", err))
		return nil, mapMissing(err, "email template", msgTemplateNotFound)
	}

	log.Info("email template updated", slog.String("template_id", id))
	return t, nil
}

// SetActive switches a template on, turning off the others of its type,
// or simply switches it off.
func (s *TemplateService) SetActive(ctx context.Context, id string, active bool) (*domain.EmailTemplate, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.Now()

	var t *domain.EmailTemplate
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if t, err = tx.EmailTemplates().FindByID(ctx, id); err != nil {
			return err
		}
		if !active {
			t.Deactivate(now)
			return tx.EmailTemplates().Update(ctx, t)
		}

		t.Activate(now)
		if err := tx.EmailTemplates().Update(ctx, t); err != nil {
			return err
		}
		return tx.EmailTemplates().DeactivateOthers(ctx, t.TemplateType, t.ID, now)
	})
	if err != nil {
		return nil, mapMissing(err, "email template", msgTemplateNotFound)
	}

	log.Info("email template toggled", slog.String("template_id", id), slog.Bool("active", active))
	return t, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	t, err := s.Store.EmailTemplates().FindByID(ctx, id)
	if err != nil {
		return nil, mapMissing(err, "email template", msgTemplateNotFound)
	}
	return t, nil
}

func (s *TemplateService) List(ctx context.Context) ([]*domain.EmailTemplate, error) {
	return s.Store.EmailTemplates().FindAll(ctx)
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.Store.EmailTemplates().Delete(ctx, id); err != nil {
		return mapMissing(err, "email template", msgTemplateNotFound)
	}
	slogx.FromContext(ctx).Info("email template deleted", slog.String("template_id", id))
	return nil
}
