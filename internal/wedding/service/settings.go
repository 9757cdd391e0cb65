package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

type SettingsService struct {
	Store store.Store
	Clock Clock
}

// Get returns the wedding settings, or nil before they are first saved.
func (s *SettingsService) Get(ctx context.Context) (*domain.WeddingSettings, error) {
	ws, err := s.Store.Settings().Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return ws, err
}

// Update validates and replaces the settings.
func (s *SettingsService) Update(ctx context.Context, in domain.WeddingSettings) (*domain.WeddingSettings, error) {
	log := slogx.FromContext(ctx)

	ws, err := domain.NewWeddingSettings(in, s.Clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Store.Settings().Save(ctx, ws); err != nil {
		log.Error("failed to save wedding settings", slog.Any("error", err))
		return nil, err
	}

	log.Info("wedding settings updated")
	return ws, nil
}
