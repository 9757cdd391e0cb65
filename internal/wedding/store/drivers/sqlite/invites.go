package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type invitesRepo struct {
	q *gen.Queries
}

// Save writes the invite row followed by its guests. Run it inside a
// transaction so a failing guest insert leaves no orphan invite.
func (r *invitesRepo) Save(ctx context.Context, inv *domain.Invite) error {
	err := r.q.CreateInvite(ctx, gen.CreateInviteParams{
		ID:             inv.ID,
		Token:          inv.Token,
		GroupName:      mapStringNull(inv.GroupName),
		AdultsCount:    int64(inv.AdultsCount),
		ChildrenCount:  int64(inv.ChildrenCount),
		PlusOneAllowed: inv.PlusOneAllowed,
		SentAt:         mapOptionalTime(inv.SentAt),
		CreatedAt:      inv.CreatedAt.UTC(),
		UpdatedAt:      inv.UpdatedAt.UTC(),
	})
	if err != nil {
		return mapConstraint(err)
	}

	guests := &guestsRepo{q: r.q}
	for _, g := range inv.Guests {
		if err := guests.upsert(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (r *invitesRepo) FindByID(ctx context.Context, id string) (*domain.Invite, error) {
	row, err := r.q.GetInviteByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return r.withGuests(ctx, row)
}

func (r *invitesRepo) FindByToken(ctx context.Context, token string) (*domain.Invite, error) {
	row, err := r.q.GetInviteByToken(ctx, token)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return r.withGuests(ctx, row)
}

// FindAll loads every guest in one query and groups them by invite.
func (r *invitesRepo) FindAll(ctx context.Context) ([]*domain.Invite, error) {
	rows, err := r.q.ListInvites(ctx)
	if err != nil {
		return nil, err
	}
	guestRows, err := r.q.ListGuests(ctx)
	if err != nil {
		return nil, err
	}

	byInvite := make(map[string][]domain.Guest, len(rows))
	for _, g := range guestRows {
		byInvite[g.InviteID] = append(byInvite[g.InviteID], mapGuest(g))
	}

	out := make([]*domain.Invite, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvite(row, byInvite[row.ID]))
	}
	return out, nil
}

func (r *invitesRepo) Delete(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteInvite(ctx, id))
}

func (r *invitesRepo) ExistsByToken(ctx context.Context, token string) (bool, error) {
	n, err := r.q.InviteTokenExists(ctx, token)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

func (r *invitesRepo) MarkSent(ctx context.Context, id string, at time.Time) error {
	at = at.UTC()
	return mapAffected(r.q.MarkInviteSent(ctx, gen.MarkInviteSentParams{
		SentAt:    mapOptionalTime(&at),
		UpdatedAt: at,
		ID:        id,
	}))
}

func (r *invitesRepo) withGuests(ctx context.Context, row gen.Invite) (*domain.Invite, error) {
	guestRows, err := r.q.ListGuestsByInviteID(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	guests := make([]domain.Guest, 0, len(guestRows))
	for _, g := range guestRows {
		guests = append(guests, mapGuest(g))
	}
	return mapInvite(row, guests), nil
}

func mapInvite(row gen.Invite, guests []domain.Guest) *domain.Invite {
	if guests == nil {
		guests = []domain.Guest{}
	}
	return domain.ReconstituteInvite(
		row.ID,
		row.Token,
		mapNullString(row.GroupName),
		int(row.AdultsCount),
		int(row.ChildrenCount),
		row.PlusOneAllowed,
		guests,
		mapNullTimePtr(row.SentAt),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}

var _ store.Invites = (*invitesRepo)(nil)
