package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// writeError maps a service error onto the JSON error body. Anything it
// does not recognise is logged and reported as "Failed to <action>".
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var (
		invalid  *domain.ValidationError
		notFound *domain.NotFoundError
		lockout  *service.LockoutError
	)

	switch {
	case errors.As(err, &invalid):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeInvalidRequest, invalid.Message)

	case errors.As(err, &notFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrCodeNotFound, notFound.Error())

	case errors.As(err, &lockout):
		w.Header().Set("Retry-After", strconv.Itoa(httpx.RetryAfterSeconds(lockout.RetryAfter)))
		httpx.WriteError(w, http.StatusTooManyRequests, httpx.ErrCodeRateLimited,
			"Too many login attempts. Please try again later.")

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrCodeInvalidCredentials, "Invalid username or password")

	case errors.Is(err, service.ErrAccountDisabled):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrCodeInvalidCredentials, "Account is deactivated")

	case errors.Is(err, service.ErrNoRecipient):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeInvalidRequest, "No guest on this invite has an email address")

	case errors.Is(err, service.ErrSettingsMissing):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeInvalidRequest, "Wedding settings have not been configured")

	case errors.Is(err, service.ErrTemplateMissing):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeInvalidRequest, "No active invite email template")

	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("action", action),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrCodeServer, "Failed to "+action)
	}
}

// decode reads the JSON body into v, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeInvalidRequest, err.Error())
		return false
	}
	return true
}
