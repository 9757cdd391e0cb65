package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/memory"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Addr:                 "127.0.0.1:0",
		DatabaseFile:         filepath.Join(dir, "wedding.db"),
		BaseURL:              "http://localhost:8080",
		SessionSecret:        strings.Repeat("s", 32),
		SessionTTL:           time.Hour,
		Issuer:               "wedding",
		PepperFile:           filepath.Join(dir, "pepper"),
		LoginMaxAttempts:     5,
		LoginWindow:          time.Minute,
		HousekeepingInterval: time.Hour,
		ShutdownGracePeriod:  time.Second,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionSecret = ""

	_, err := New(context.Background(), cfg, slogx.Discard())
	require.ErrorContains(t, err, "WEDDING_SESSION_SECRET")
}

func TestNewWiresMemoryBackends(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(context.Background(), cfg, slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.FileExists(t, cfg.PepperFile, "pepper is created on first start")
	require.FileExists(t, cfg.DatabaseFile)

	require.IsType(t, &memory.Counters{}, app.counters)
	require.NotNil(t, app.housekeepingService.Counters)
	require.Nil(t, app.router.Counters, "no redis, nothing extra to probe")

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health rsvpsdk.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, BuildVersion, health.Version)
	require.Equal(t, "ok", health.Checks.Database)

	n, err := app.Housekeeping().RunOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}
