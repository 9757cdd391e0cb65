package sqlite

import (
	"context"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type rsvpsRepo struct {
	q *gen.Queries
}

func (r *rsvpsRepo) Save(ctx context.Context, rsvp *domain.RSVP) error {
	return mapConstraint(r.q.UpsertRSVP(ctx, gen.UpsertRSVPParams{
		ID:                  rsvp.ID,
		InviteID:            rsvp.InviteID,
		IsAttending:         rsvp.IsAttending,
		AdultsAttending:     int64(rsvp.AdultsAttending),
		ChildrenAttending:   int64(rsvp.ChildrenAttending),
		DietaryRequirements: mapOptionalString(rsvp.DietaryRequirements),
		RespondedAt:         rsvp.RespondedAt.UTC(),
		CreatedAt:           rsvp.CreatedAt.UTC(),
		UpdatedAt:           rsvp.UpdatedAt.UTC(),
	}))
}

func (r *rsvpsRepo) FindByID(ctx context.Context, id string) (*domain.RSVP, error) {
	row, err := r.q.GetRSVPByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapRSVP(row), nil
}

func (r *rsvpsRepo) FindByInviteID(ctx context.Context, inviteID string) (*domain.RSVP, error) {
	row, err := r.q.GetRSVPByInviteID(ctx, inviteID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapRSVP(row), nil
}

func (r *rsvpsRepo) FindByInviteIDs(ctx context.Context, inviteIDs []string) (map[string]*domain.RSVP, error) {
	out := make(map[string]*domain.RSVP, len(inviteIDs))
	if len(inviteIDs) == 0 {
		return out, nil
	}

	rows, err := r.q.ListRSVPsByInviteIDs(ctx, inviteIDs)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.InviteID] = mapRSVP(row)
	}
	return out, nil
}

func mapRSVP(row gen.Rsvp) *domain.RSVP {
	return domain.ReconstituteRSVP(
		row.ID,
		row.InviteID,
		row.IsAttending,
		int(row.AdultsAttending),
		int(row.ChildrenAttending),
		mapNullStringPtr(row.DietaryRequirements),
		row.RespondedAt.UTC(),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}
