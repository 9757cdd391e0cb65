package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) Create(ctx context.Context, s *domain.Session) error {
	return mapConstraint(r.q.CreateSession(ctx, gen.CreateSessionParams{
		ID:          s.ID,
		AdminUserID: s.AdminUserID,
		ExpiresAt:   s.ExpiresAt.UTC(),
		CreatedAt:   s.CreatedAt.UTC(),
	}))
}

func (r *sessionsRepo) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	row, err := r.q.GetSessionByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return domain.ReconstituteSession(row.ID, row.AdminUserID, row.ExpiresAt.UTC(), row.CreatedAt.UTC()), nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteSession(ctx, id))
}

func (r *sessionsRepo) DeleteByAdminUserID(ctx context.Context, adminUserID string) error {
	_, err := r.q.DeleteSessionsByAdminUserID(ctx, adminUserID)
	return err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredSessions(ctx, now.UTC())
}
