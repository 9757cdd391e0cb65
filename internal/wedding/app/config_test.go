package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(DefaultEnvFile)
	require.NoError(t, err, "a missing default .env is fine")

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "wedding.db", cfg.DatabaseFile)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 5, cfg.LoginMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.LoginWindow)
	require.Equal(t, "Wedding RSVP <onboarding@resend.dev>", cfg.MailFrom)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Empty(t, cfg.RedisURL)
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wedding.env")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"WEDDING_ADDR=:9090",
		"WEDDING_SESSION_TTL=2h",
		"WEDDING_LOGIN_MAX_ATTEMPTS=3",
	}, "\n")), 0o600))

	// Variables already in the environment win over the file.
	t.Setenv("WEDDING_LOGIN_MAX_ATTEMPTS", "7")
	// godotenv sets process variables; make sure they are undone.
	t.Setenv("WEDDING_ADDR", "")
	require.NoError(t, os.Unsetenv("WEDDING_ADDR"))
	t.Setenv("WEDDING_SESSION_TTL", "")
	require.NoError(t, os.Unsetenv("WEDDING_SESSION_TTL"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
	require.Equal(t, 7, cfg.LoginMaxAttempts)

	_, err = LoadConfig(filepath.Join(dir, "missing.env"))
	require.Error(t, err, "an explicit env file must exist")
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("WEDDING_SESSION_TTL", "soon")
	_, err := LoadConfig("")
	require.ErrorContains(t, err, "parse env")
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		SessionSecret:    strings.Repeat("x", 32),
		SessionTTL:       24 * time.Hour,
		LoginMaxAttempts: 5,
		LoginWindow:      15 * time.Minute,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"short secret", func(c *Config) { c.SessionSecret = "short" }, "WEDDING_SESSION_SECRET"},
		{"ttl too short", func(c *Config) { c.SessionTTL = time.Minute }, "WEDDING_SESSION_TTL"},
		{"ttl too long", func(c *Config) { c.SessionTTL = 200 * time.Hour }, "WEDDING_SESSION_TTL"},
		{"no attempts", func(c *Config) { c.LoginMaxAttempts = 0 }, "WEDDING_LOGIN_MAX_ATTEMPTS"},
		{"no window", func(c *Config) { c.LoginWindow = 0 }, "WEDDING_LOGIN_WINDOW"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.message)
		})
	}
}
