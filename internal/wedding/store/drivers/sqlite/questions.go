package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type questionsRepo struct {
	q *gen.Queries
}

func (r *questionsRepo) Create(ctx context.Context, cq *domain.CustomQuestion) error {
	options, err := encodeOptions(cq.Options)
	if err != nil {
		return err
	}
	return mapConstraint(r.q.CreateCustomQuestion(ctx, gen.CreateCustomQuestionParams{
		ID:           cq.ID,
		QuestionText: cq.QuestionText,
		QuestionType: string(cq.QuestionType),
		Options:      options,
		IsRequired:   cq.IsRequired,
		DisplayOrder: int64(cq.DisplayOrder),
		CreatedAt:    cq.CreatedAt.UTC(),
		UpdatedAt:    cq.UpdatedAt.UTC(),
	}))
}

func (r *questionsRepo) Update(ctx context.Context, cq *domain.CustomQuestion) error {
	options, err := encodeOptions(cq.Options)
	if err != nil {
		return err
	}
	return mapAffected(r.q.UpdateCustomQuestion(ctx, gen.UpdateCustomQuestionParams{
		QuestionText: cq.QuestionText,
		QuestionType: string(cq.QuestionType),
		Options:      options,
		IsRequired:   cq.IsRequired,
		DisplayOrder: int64(cq.DisplayOrder),
		UpdatedAt:    cq.UpdatedAt.UTC(),
		ID:           cq.ID,
	}))
}

func (r *questionsRepo) FindByID(ctx context.Context, id string) (*domain.CustomQuestion, error) {
	row, err := r.q.GetCustomQuestionByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapCustomQuestion(row)
}

func (r *questionsRepo) FindByText(ctx context.Context, text string) (*domain.CustomQuestion, error) {
	row, err := r.q.GetCustomQuestionByText(ctx, text)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapCustomQuestion(row)
}

func (r *questionsRepo) FindAll(ctx context.Context) ([]*domain.CustomQuestion, error) {
	rows, err := r.q.ListCustomQuestions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.CustomQuestion, 0, len(rows))
	for _, row := range rows {
		cq, err := mapCustomQuestion(row)
		if err != nil {
			return nil, err
		}
		out = append(out, cq)
	}
	return out, nil
}

func (r *questionsRepo) Delete(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteCustomQuestion(ctx, id))
}

// Options are kept as a JSON array; text questions store "[]".
func encodeOptions(options []string) (string, error) {
	if len(options) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("encode question options: %w", err)
	}
	return string(b), nil
}

func mapCustomQuestion(row gen.CustomQuestion) (*domain.CustomQuestion, error) {
	var options []string
	if row.Options != "" && row.Options != "[]" {
		if err := json.Unmarshal([]byte(row.Options), &options); err != nil {
			return nil, fmt.Errorf("decode options of question %s: %w", row.ID, err)
		}
	}
	return domain.ReconstituteCustomQuestion(
		row.ID,
		row.QuestionText,
		domain.QuestionType(row.QuestionType),
		options,
		row.IsRequired,
		int(row.DisplayOrder),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	), nil
}
