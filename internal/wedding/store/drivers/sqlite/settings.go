package sqlite

import (
	"context"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type settingsRepo struct {
	q *gen.Queries
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.WeddingSettings, error) {
	row, err := r.q.GetWeddingSettings(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &domain.WeddingSettings{
		Partner1Name:   row.Partner1Name,
		Partner2Name:   row.Partner2Name,
		WeddingDate:    row.WeddingDate,
		WeddingTime:    row.WeddingTime,
		VenueName:      row.VenueName,
		VenueAddress:   row.VenueAddress,
		DressCode:      mapNullStringPtr(row.DressCode),
		RSVPDeadline:   mapNullStringPtr(row.RsvpDeadline),
		RegistryURL:    mapNullStringPtr(row.RegistryUrl),
		AdditionalInfo: mapNullStringPtr(row.AdditionalInfo),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}, nil
}

func (r *settingsRepo) Save(ctx context.Context, s *domain.WeddingSettings) error {
	return r.q.UpsertWeddingSettings(ctx, gen.UpsertWeddingSettingsParams{
		Partner1Name:   s.Partner1Name,
		Partner2Name:   s.Partner2Name,
		WeddingDate:    s.WeddingDate,
		WeddingTime:    s.WeddingTime,
		VenueName:      s.VenueName,
		VenueAddress:   s.VenueAddress,
		DressCode:      mapOptionalString(s.DressCode),
		RsvpDeadline:   mapOptionalString(s.RSVPDeadline),
		RegistryUrl:    mapOptionalString(s.RegistryURL),
		AdditionalInfo: mapOptionalString(s.AdditionalInfo),
		UpdatedAt:      s.UpdatedAt.UTC(),
	})
}
