package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
)

type ReportsHandler struct {
	ReportService *service.ReportService
}

// HandleOverview godoc
//
//	@Summary		RSVP Overview
//	@Description	Response totals and, per course, how many attending guests picked each meal option.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	rsvpsdk.Overview
//	@Security		BearerAuth
//	@Router			/api/v1/admin/reports/overview [get].
func (h *ReportsHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.ReportService.Overview(r.Context())
	if err != nil {
		writeError(w, r, err, "build overview")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOverview(o))
}
