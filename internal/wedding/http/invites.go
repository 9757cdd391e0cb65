package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

type InvitesHandler struct {
	InviteService *service.InviteService
	EmailService  *service.EmailService
}

// HandleList godoc
//
//	@Summary		List Invites
//	@Description	Lists every invite, newest first, with guests and response status.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{array}		rsvpsdk.InviteSummary
//	@Failure		401	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.InviteService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list invites")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInviteSummaries(list))
}

// HandleCreateIndividual godoc
//
//	@Summary		Create Individual Invite
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.CreateIndividualInviteRequest	true	"Guest"
//	@Success		201		{object}	rsvpsdk.Invite
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/invites [post].
func (h *InvitesHandler) HandleCreateIndividual(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.CreateIndividualInviteRequest
	if !decode(w, r, &req) {
		return
	}

	inv, err := h.InviteService.CreateIndividual(r.Context(), service.IndividualInviteInput{
		GuestName:      req.GuestName,
		Email:          req.Email,
		PlusOneAllowed: req.PlusOneAllowed,
	})
	if err != nil {
		writeError(w, r, err, "create invite")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvite(inv))
}

// HandleCreateGroup godoc
//
//	@Summary		Create Group Invite
//	@Description	The guest list must hold exactly adultsCount + childrenCount names, adults first, and at least one email address.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.CreateGroupInviteRequest	true	"Group"
//	@Success		201		{object}	rsvpsdk.Invite
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/invites/group [post].
func (h *InvitesHandler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.CreateGroupInviteRequest
	if !decode(w, r, &req) {
		return
	}

	guests := make([]domain.GuestInput, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, domain.GuestInput{Name: g.Name, Email: g.Email})
	}
	inv, err := h.InviteService.CreateGroup(r.Context(), service.GroupInviteInput{
		GroupName:     req.GroupName,
		AdultsCount:   req.AdultsCount,
		ChildrenCount: req.ChildrenCount,
		Guests:        guests,
	})
	if err != nil {
		writeError(w, r, err, "create invite")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvite(inv))
}

// HandleGet godoc
//
//	@Summary		Get Invite
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string	true	"Invite ID"
//	@Success		200	{object}	rsvpsdk.Invite
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/invites/{id} [get].
func (h *InvitesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InviteService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvite(inv))
}

// HandleDelete godoc
//
//	@Summary		Delete Invite
//	@Description	Removes the invite with its guests, response, meal selections and answers.
//	@Tags			Invites
//	@Param			id	path	string	true	"Invite ID"
//	@Success		204
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/invites/{id} [delete].
func (h *InvitesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.InviteService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete invite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSend godoc
//
//	@Summary		Send Invite Email
//	@Description	Emails the invite to its first guest with an address using the active invite template.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string	true	"Invite ID"
//	@Success		200	{object}	rsvpsdk.SendInviteResponse
//	@Failure		400	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/invites/{id}/send [post].
func (h *InvitesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	res, err := h.EmailService.SendInvite(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "send email")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rsvpsdk.SendInviteResponse{
		MessageID: res.MessageID,
		Recipient: res.Recipient,
		SentAt:    res.SentAt,
	})
}
