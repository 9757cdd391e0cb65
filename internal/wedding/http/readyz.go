package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

// Pinger is a dependency the readiness probe can reach.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe reporting the database and, when configured, the shared counter store.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rsvpsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	rsvpsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db Pinger, counters Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &rsvpsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := db.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if counters != nil {
			checks.Counters = "ok"
			if err := counters.Ping(r.Context()); err != nil {
				checks.Counters = "error: " + err.Error()
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		httpx.WriteJSON(w, code, rsvpsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
