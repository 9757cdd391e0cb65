package wedding_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	svc := startService(t, nil)

	live, err := svc.client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := svc.client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Empty(t, ready.Checks.Counters, "no redis configured")
}

func TestReadinessProbesRedis(t *testing.T) {
	nw, redisURL := startRedis(t)
	svc := startService(t, map[string]string{"WEDDING_REDIS_URL": redisURL}, nw)

	ready, err := svc.client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Counters)
}
