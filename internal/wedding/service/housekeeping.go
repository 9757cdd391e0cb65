package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store"
)

// Sweeper drops lapsed in-process state, such as memory.Counters.
type Sweeper interface {
	Sweep() int
}

// HousekeepingService periodically removes expired admin sessions and
// lapsed login counters.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Clock    Clock

	// Counters is swept on every run when set.
	Counters Sweeper

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs a cleanup now and then on every tick until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop waits for an in-progress cleanup to finish.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	_, _ = s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			_, _ = s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single cleanup and returns how many sessions were
// deleted.
func (s *HousekeepingService) RunOnce(ctx context.Context) (int64, error) {
	s.Logger.Debug("starting housekeeping cleanup")

	sessions, err := s.Store.Sessions().DeleteExpired(ctx, s.Clock.Now())
	if err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
		return 0, err
	}

	swept := 0
	if s.Counters != nil {
		swept = s.Counters.Sweep()
	}

	s.Logger.Info("housekeeping cleanup completed",
		"expired_sessions", sessions,
		"lapsed_counters", swept,
	)
	return sessions, nil
}
