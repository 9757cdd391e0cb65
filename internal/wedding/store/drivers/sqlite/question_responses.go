package sqlite

import (
	"context"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type questionResponsesRepo struct {
	q *gen.Queries
}

func (r *questionResponsesRepo) Save(ctx context.Context, resp domain.QuestionResponse) error {
	return mapConstraint(r.q.CreateQuestionResponse(ctx, gen.CreateQuestionResponseParams{
		ID:           resp.ID,
		RsvpID:       resp.RSVPID,
		QuestionID:   resp.QuestionID,
		ResponseText: resp.ResponseText,
		CreatedAt:    resp.CreatedAt.UTC(),
	}))
}

func (r *questionResponsesRepo) SaveMany(ctx context.Context, responses []domain.QuestionResponse) error {
	for _, resp := range responses {
		if err := r.Save(ctx, resp); err != nil {
			return err
		}
	}
	return nil
}

func (r *questionResponsesRepo) FindByID(ctx context.Context, id string) (domain.QuestionResponse, error) {
	row, err := r.q.GetQuestionResponseByID(ctx, id)
	if err != nil {
		return domain.QuestionResponse{}, mapNotFound(err)
	}
	return mapQuestionResponse(row), nil
}

func (r *questionResponsesRepo) FindByRSVPID(ctx context.Context, rsvpID string) ([]domain.QuestionResponse, error) {
	rows, err := r.q.ListQuestionResponsesByRSVPID(ctx, rsvpID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.QuestionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapQuestionResponse(row))
	}
	return out, nil
}

func (r *questionResponsesRepo) DeleteByRSVPID(ctx context.Context, rsvpID string) error {
	_, err := r.q.DeleteQuestionResponsesByRSVPID(ctx, rsvpID)
	return err
}

func mapQuestionResponse(row gen.QuestionResponse) domain.QuestionResponse {
	return domain.ReconstituteQuestionResponse(row.ID, row.RsvpID, row.QuestionID, row.ResponseText, row.CreatedAt.UTC())
}
