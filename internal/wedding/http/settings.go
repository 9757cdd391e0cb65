package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet godoc
//
//	@Summary		Get Wedding Settings
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	rsvpsdk.WeddingSettings
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"not configured yet"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ws, err := h.SettingsService.Get(r.Context())
	if err != nil {
		writeError(w, r, err, "load settings")
		return
	}
	if ws == nil {
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrCodeNotFound, "Wedding settings have not been configured")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSettings(ws))
}

// HandleUpdate godoc
//
//	@Summary		Update Wedding Settings
//	@Description	Replaces the settings. Partner names, date, time, venue name and address are required.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.WeddingSettings	true	"Settings"
//	@Success		200		{object}	rsvpsdk.WeddingSettings
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/settings [put].
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.WeddingSettings
	if !decode(w, r, &req) {
		return
	}

	ws, err := h.SettingsService.Update(r.Context(), fromSettings(req))
	if err != nil {
		writeError(w, r, err, "save settings")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSettings(ws))
}
