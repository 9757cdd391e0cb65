package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

const (
	msgMealOptionNotFound = "Meal option not found"
	msgQuestionNotFound   = "Custom question not found"
)

// CatalogService manages what the RSVP form offers: meal options per
// course and the custom questions.
type CatalogService struct {
	Store store.Store
	Clock Clock
}

// MealOptionPatch changes the fields that are set.
type MealOptionPatch struct {
	Name        *string
	Description *string
	IsAvailable *bool
}

// QuestionPatch changes the fields that are set. Setting Options
// replaces the whole list.
type QuestionPatch struct {
	QuestionText *string
	Options      []string
	IsRequired   *bool
	DisplayOrder *int
}

func (s *CatalogService) CreateMealOption(ctx context.Context, in domain.MealOptionInput) (*domain.MealOption, error) {
	log := slogx.FromContext(ctx)

	m, err := domain.NewMealOption(in, s.Clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Store.MealOptions().Create(ctx, m); err != nil {
		log.Error("failed to create meal option", slog.Any("error", err))
		return nil, err
	}

	log.Info("meal option created", slog.String("meal_option_id", m.ID), slog.String("course", string(m.CourseType)))
	return m, nil
}

func (s *CatalogService) UpdateMealOption(ctx context.Context, id string, p MealOptionPatch) (*domain.MealOption, error) {
	log := slogx.FromContext(ctx)

	m, err := s.Store.MealOptions().FindByID(ctx, id)
	if err != nil {
		return nil, mapMissing(err, "meal option", msgMealOptionNotFound)
	}

	in := domain.MealOptionInput{
		CourseType:  m.CourseType,
		Name:        m.Name,
		Description: m.Description,
		IsAvailable: p.IsAvailable,
	}
	if p.Name != nil {
		in.Name = *p.Name
	}
	if p.Description != nil {
		in.Description = p.Description
	}
	if err := m.Update(in, s.Clock.Now()); err != nil {
		return nil, err
	}

	if err := s.Store.MealOptions().Update(ctx, m); err != nil {
		log.Error("failed to update meal option", slog.String("meal_option_id", id), slog.Any("error", err))
		return nil, mapMissing(err, "meal option", msgMealOptionNotFound)
	}
	log.Info("meal option updated", slog.String("meal_option_id", id))
	return m, nil
}

// ListMealOptions orders by course then name.
func (s *CatalogService) ListMealOptions(ctx context.Context, onlyAvailable bool) ([]*domain.MealOption, error) {
	return s.Store.MealOptions().FindAll(ctx, onlyAvailable)
}

// DeleteMealOption refuses to remove an option guests have chosen; mark
// it unavailable instead.
func (s *CatalogService) DeleteMealOption(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.MealOptions().Delete(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrConflict):
		return domain.Invalid("Meal option has been selected by guests and cannot be deleted")
	default:
		return mapMissing(err, "meal option", msgMealOptionNotFound)
	}

	log.Info("meal option deleted", slog.String("meal_option_id", id))
	return nil
}

func (s *CatalogService) CreateQuestion(ctx context.Context, in domain.CustomQuestionInput) (*domain.CustomQuestion, error) {
	log := slogx.FromContext(ctx)

	q, err := domain.NewCustomQuestion(in, s.Clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Store.Questions().Create(ctx, q); err != nil {
		log.Error("failed to create question", slog.Any("error", err))
		return nil, err
	}

	log.Info("question created", slog.String("question_id", q.ID), slog.String("type", string(q.QuestionType)))
	return q, nil
}

func (s *CatalogService) UpdateQuestion(ctx context.Context, id string, p QuestionPatch) (*domain.CustomQuestion, error) {
	log := slogx.FromContext(ctx)

	q, err := s.Store.Questions().FindByID(ctx, id)
	if err != nil {
		return nil, mapMissing(err, "question", msgQuestionNotFound)
	}

	in := domain.CustomQuestionInput{
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		Options:      q.Options,
		IsRequired:   q.IsRequired,
		DisplayOrder: q.DisplayOrder,
	}
	if p.QuestionText != nil {
		in.QuestionText = *p.QuestionText
	}
	if p.Options != nil {
		in.Options = p.Options
	}
	if p.IsRequired != nil {
		in.IsRequired = *p.IsRequired
	}
	if p.DisplayOrder != nil {
		in.DisplayOrder = *p.DisplayOrder
	}
	if err := q.Update(in, s.Clock.Now()); err != nil {
		return nil, err
	}

	if err := s.Store.Questions().Update(ctx, q); err != nil {
		log.Error("failed to update question", slog.String("question_id", id), slog.Any("error", err))
		return nil, mapMissing(err, "question", msgQuestionNotFound)
	}
	log.Info("question updated", slog.String("question_id", id))
	return q, nil
}

// ListQuestions orders by display order.
func (s *CatalogService) ListQuestions(ctx context.Context) ([]*domain.CustomQuestion, error) {
	return s.Store.Questions().FindAll(ctx)
}

// DeleteQuestion also removes every answer given to it.
func (s *CatalogService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.Store.Questions().Delete(ctx, id); err != nil {
		return mapMissing(err, "question", msgQuestionNotFound)
	}
	slogx.FromContext(ctx).Info("question deleted", slog.String("question_id", id))
	return nil
}

// mapMissing turns store.ErrNotFound into a domain NotFoundError and
// passes anything else through.
func mapMissing(err error, resource, message string) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.NotFound(resource, message)
	}
	return err
}
