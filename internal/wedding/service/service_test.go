package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func mustMealOption(t *testing.T, s *sqlite.Store, course domain.CourseType, name string, available bool) *domain.MealOption {
	t.Helper()

	m, err := domain.NewMealOption(domain.MealOptionInput{CourseType: course, Name: name, IsAvailable: &available}, testNow)
	require.NoError(t, err)
	require.NoError(t, s.MealOptions().Create(context.Background(), m))
	return m
}

func TestClockDefaultsToWallClock(t *testing.T) {
	var c Clock
	require.WithinDuration(t, time.Now(), c.Now(), time.Second)
	require.Equal(t, time.UTC, c.Now().Location())

	local := time.Date(2026, 1, 1, 9, 0, 0, 0, time.FixedZone("AEST", 10*3600))
	require.Equal(t, time.UTC, fixedClock(local).Now().Location())
}

func TestKeyedMutexSerialisesSameKey(t *testing.T) {
	var (
		k       keyedMutex
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("invite")
			defer unlock()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxSeen)
	require.Empty(t, k.locks)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	var k keyedMutex

	unlockA := k.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	unlockA()
}
