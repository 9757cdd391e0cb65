package sqlite

import (
	"context"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type guestsRepo struct {
	q *gen.Queries
}

func (r *guestsRepo) Save(ctx context.Context, g domain.Guest) (domain.Guest, error) {
	if err := r.upsert(ctx, g); err != nil {
		return domain.Guest{}, err
	}
	return r.FindByID(ctx, g.ID)
}

func (r *guestsRepo) upsert(ctx context.Context, g domain.Guest) error {
	return mapConstraint(r.q.UpsertGuest(ctx, gen.UpsertGuestParams{
		ID:        g.ID,
		InviteID:  g.InviteID,
		Name:      g.Name,
		Email:     g.Email,
		IsPlusOne: g.IsPlusOne,
		CreatedAt: g.CreatedAt.UTC(),
		UpdatedAt: g.UpdatedAt.UTC(),
	}))
}

func (r *guestsRepo) FindByID(ctx context.Context, id string) (domain.Guest, error) {
	row, err := r.q.GetGuestByID(ctx, id)
	if err != nil {
		return domain.Guest{}, mapNotFound(err)
	}
	return mapGuest(row), nil
}

func (r *guestsRepo) FindByInviteID(ctx context.Context, inviteID string) ([]domain.Guest, error) {
	rows, err := r.q.ListGuestsByInviteID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Guest, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapGuest(row))
	}
	return out, nil
}

func (r *guestsRepo) FindPlusOneByInviteID(ctx context.Context, inviteID string) (domain.Guest, error) {
	row, err := r.q.GetPlusOneByInviteID(ctx, inviteID)
	if err != nil {
		return domain.Guest{}, mapNotFound(err)
	}
	return mapGuest(row), nil
}

func (r *guestsRepo) Delete(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteGuest(ctx, id))
}

func mapGuest(row gen.Guest) domain.Guest {
	return domain.ReconstituteGuest(
		row.ID,
		row.InviteID,
		row.Name,
		row.Email,
		row.IsPlusOne,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}
