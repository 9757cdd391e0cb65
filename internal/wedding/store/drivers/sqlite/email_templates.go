package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type emailTemplatesRepo struct {
	q *gen.Queries
}

func (r *emailTemplatesRepo) Create(ctx context.Context, t *domain.EmailTemplate) error {
	return mapConstraint(r.q.CreateEmailTemplate(ctx, gen.CreateEmailTemplateParams{
		ID:           t.ID,
		Name:         t.Name,
		TemplateType: string(t.TemplateType),
		Subject:      t.Subject,
		HtmlContent:  t.HTMLContent,
		HeroImageUrl: mapOptionalString(t.HeroImageURL),
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt.UTC(),
		UpdatedAt:    t.UpdatedAt.UTC(),
	}))
}

func (r *emailTemplatesRepo) Update(ctx context.Context, t *domain.EmailTemplate) error {
	return mapAffected(r.q.UpdateEmailTemplate(ctx, gen.UpdateEmailTemplateParams{
		Name:         t.Name,
		TemplateType: string(t.TemplateType),
		Subject:      t.Subject,
		HtmlContent:  t.HTMLContent,
		HeroImageUrl: mapOptionalString(t.HeroImageURL),
		IsActive:     t.IsActive,
		UpdatedAt:    t.UpdatedAt.UTC(),
		ID:           t.ID,
	}))
}

func (r *emailTemplatesRepo) FindByID(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	row, err := r.q.GetEmailTemplateByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapEmailTemplate(row), nil
}

func (r *emailTemplatesRepo) FindByName(ctx context.Context, name string) (*domain.EmailTemplate, error) {
	row, err := r.q.GetEmailTemplateByName(ctx, name)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapEmailTemplate(row), nil
}

func (r *emailTemplatesRepo) FindAll(ctx context.Context) ([]*domain.EmailTemplate, error) {
	rows, err := r.q.ListEmailTemplates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.EmailTemplate, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEmailTemplate(row))
	}
	return out, nil
}

func (r *emailTemplatesRepo) FindActiveByType(ctx context.Context, tt domain.TemplateType) (*domain.EmailTemplate, error) {
	row, err := r.q.GetActiveEmailTemplateByType(ctx, string(tt))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapEmailTemplate(row), nil
}

func (r *emailTemplatesRepo) DeactivateOthers(ctx context.Context, tt domain.TemplateType, keepID string, at time.Time) error {
	_, err := r.q.DeactivateEmailTemplatesByType(ctx, gen.DeactivateEmailTemplatesByTypeParams{
		UpdatedAt:    at.UTC(),
		TemplateType: string(tt),
		ID:           keepID,
	})
	return err
}

func (r *emailTemplatesRepo) Delete(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteEmailTemplate(ctx, id))
}

func mapEmailTemplate(row gen.EmailTemplate) *domain.EmailTemplate {
	return domain.ReconstituteEmailTemplate(
		row.ID,
		row.Name,
		domain.TemplateType(row.TemplateType),
		row.Subject,
		row.HtmlContent,
		mapNullStringPtr(row.HeroImageUrl),
		row.IsActive,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}
