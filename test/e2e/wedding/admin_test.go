package wedding_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginLockout(t *testing.T) {
	svc := startService(t, nil)
	ctx := t.Context()

	for range 3 {
		_, err := svc.client.Login(ctx, adminUsername, "wrong-password")
		requireStatus(t, err, http.StatusUnauthorized)
	}

	_, err := svc.client.Login(ctx, adminUsername, adminPassword)
	apiErr := requireStatus(t, err, http.StatusTooManyRequests)
	require.Positive(t, apiErr.RetryAfter)
}

// With Redis holding the counters, a lockout survives a restart of the
// service container.
func TestLoginLockoutSharedThroughRedis(t *testing.T) {
	nw, redisURL := startRedis(t)
	env := map[string]string{"WEDDING_REDIS_URL": redisURL}

	first := startService(t, env, nw)
	for range 3 {
		_, err := first.client.Login(t.Context(), adminUsername, "wrong-password")
		requireStatus(t, err, http.StatusUnauthorized)
	}
	require.NoError(t, first.container.Terminate(t.Context()))

	second := startService(t, env, nw)
	_, err := second.client.Login(t.Context(), adminUsername, adminPassword)
	requireStatus(t, err, http.StatusTooManyRequests)
}

func TestDisabledAdminLosesSession(t *testing.T) {
	svc := startService(t, nil)
	session := svc.login(t)

	_, err := session.ListInvites(t.Context())
	require.NoError(t, err)

	svc.cli(t, "admin", "disable", adminUsername)

	_, err = session.ListInvites(t.Context())
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.client.Login(t.Context(), adminUsername, adminPassword)
	requireStatus(t, err, http.StatusUnauthorized)
}
