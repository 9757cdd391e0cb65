package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

type TemplatesHandler struct {
	TemplateService *service.TemplateService
}

// HandleList godoc
//
//	@Summary		List Email Templates
//	@Tags			Templates
//	@Produce		json
//	@Success		200	{array}	rsvpsdk.EmailTemplate
//	@Security		BearerAuth
//	@Router			/api/v1/admin/templates [get].
func (h *TemplatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.TemplateService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list templates")
		return
	}
	out := make([]rsvpsdk.EmailTemplate, 0, len(list))
	for _, t := range list {
		out = append(out, toTemplate(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Email Template
//	@Description	New templates start active and switch off the other templates of the same type. Subject and HTML may reference variables such as guest_name and rsvp_url.
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.EmailTemplateRequest	true	"Template"
//	@Success		201		{object}	rsvpsdk.EmailTemplate
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/templates [post].
func (h *TemplatesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.EmailTemplateRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.TemplateService.Create(r.Context(), fromTemplate(req))
	if err != nil {
		writeError(w, r, err, "create template")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTemplate(t))
}

// HandleUpdate godoc
//
//	@Summary		Update Email Template
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Template ID"
//	@Param			request	body		rsvpsdk.EmailTemplateRequest	true	"Template"
//	@Success		200		{object}	rsvpsdk.EmailTemplate
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/templates/{id} [put].
func (h *TemplatesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.EmailTemplateRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.TemplateService.Update(r.Context(), r.PathValue("id"), fromTemplate(req))
	if err != nil {
		writeError(w, r, err, "update template")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTemplate(t))
}

// HandleActivate godoc
//
//	@Summary		Activate Email Template
//	@Description	Activating a template deactivates the others of its type. Send isActive=false to switch it off.
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Template ID"
//	@Param			request	body		rsvpsdk.ActivateTemplateRequest	true	"State"
//	@Success		200		{object}	rsvpsdk.EmailTemplate
//	@Failure		404		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/templates/{id}/activate [post].
func (h *TemplatesHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.ActivateTemplateRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.TemplateService.SetActive(r.Context(), r.PathValue("id"), req.IsActive)
	if err != nil {
		writeError(w, r, err, "update template")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTemplate(t))
}

// HandleDelete godoc
//
//	@Summary		Delete Email Template
//	@Tags			Templates
//	@Param			id	path	string	true	"Template ID"
//	@Success		204
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/templates/{id} [delete].
func (h *TemplatesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TemplateService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete template")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
