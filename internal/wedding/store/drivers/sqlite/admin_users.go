package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type adminUsersRepo struct {
	q *gen.Queries
}

func (r *adminUsersRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	return mapConstraint(r.q.CreateAdminUser(ctx, gen.CreateAdminUserParams{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		LastLoginAt:  mapOptionalTime(u.LastLoginAt),
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}))
}

func (r *adminUsersRepo) FindByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	row, err := r.q.GetAdminUserByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapAdminUser(row), nil
}

func (r *adminUsersRepo) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	row, err := r.q.GetAdminUserByUsername(ctx, username)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapAdminUser(row), nil
}

func (r *adminUsersRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return mapAffected(r.q.UpdateAdminUserLastLogin(ctx, gen.UpdateAdminUserLastLoginParams{
		LastLoginAt: mapOptionalTime(&at),
		UpdatedAt:   at.UTC(),
		ID:          id,
	}))
}

func (r *adminUsersRepo) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	return mapAffected(r.q.SetAdminUserActive(ctx, gen.SetAdminUserActiveParams{
		IsActive:  active,
		UpdatedAt: at.UTC(),
		ID:        id,
	}))
}

func (r *adminUsersRepo) Count(ctx context.Context) (int, error) {
	n, err := r.q.CountAdminUsers(ctx)
	return int(n), err
}

func mapAdminUser(row gen.AdminUser) *domain.AdminUser {
	return domain.ReconstituteAdminUser(
		row.ID,
		row.Username,
		row.Email,
		row.PasswordHash,
		row.IsActive,
		mapNullTimePtr(row.LastLoginAt),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}
