package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

// RSVPHandler serves the public response page API. The invite token in
// the path is the only credential.
type RSVPHandler struct {
	RSVPService *service.RSVPService
}

// HandleView godoc
//
//	@Summary		Get Invite By Token
//	@Description	Returns the invite, its guests, the current response if any, available meal options, questions and wedding details.
//	@Tags			RSVP
//	@Produce		json
//	@Param			token	path		string					true	"Invite token"
//	@Success		200		{object}	rsvpsdk.InviteView		"invite view"
//	@Failure		404		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/rsvp/{token} [get].
func (h *RSVPHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	view, err := h.RSVPService.View(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, err, "load invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInviteView(view))
}

// HandleSubmit godoc
//
//	@Summary		Submit RSVP
//	@Description	Creates or replaces the response for an invite. Meal selections may address the plus-one named in the same request with guestId "PLUS_ONE".
//	@Tags			RSVP
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string						true	"Invite token"
//	@Param			request	body		rsvpsdk.SubmitRSVPRequest	true	"Response"
//	@Success		200		{object}	rsvpsdk.SubmitRSVPResponse	"rsvpId, plusOneGuestId"
//	@Failure		400		{object}	rsvpsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	rsvpsdk.ErrorResponse		"error, error_description"
//	@Failure		429		{object}	rsvpsdk.ErrorResponse		"error, error_description"
//	@Router			/api/v1/rsvp/{token} [post].
func (h *RSVPHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.SubmitRSVPRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.RSVPService.Submit(r.Context(), fromSubmit(r.PathValue("token"), req))
	if err != nil {
		writeError(w, r, err, "submit RSVP")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rsvpsdk.SubmitRSVPResponse{
		RSVPID:         res.RSVPID,
		PlusOneGuestID: res.PlusOneGuestID,
	})
}
