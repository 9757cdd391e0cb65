package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

type SessionHandler struct {
	AdminService *service.AdminService
}

// HandleLogin godoc
//
//	@Summary		Admin Login
//	@Description	Exchanges a username and password for a session token. Repeated failures from the same address lock the username out for a while.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	rsvpsdk.LoginResponse	"token, expiresAt"
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/admin/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrCodeInvalidRequest, "Username and password are required")
		return
	}

	res, err := h.AdminService.Login(r.Context(), service.LoginInput{
		Username:   req.Username,
		Password:   req.Password,
		ClientAddr: httpx.IPKeyExtractor(r),
	})
	if err != nil {
		writeError(w, r, err, "log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rsvpsdk.LoginResponse{
		Token:     res.Token,
		TokenType: "Bearer",
		ExpiresAt: res.ExpiresAt,
		Username:  res.User.Username,
	})
}

// HandleLogout godoc
//
//	@Summary		Admin Logout
//	@Description	Ends the session the bearer token belongs to.
//	@Tags			Admin
//	@Success		204
//	@Failure		401	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrCodeUnauthorized, "Authentication required")
		return
	}
	if err := h.AdminService.Logout(r.Context(), p.SessionID); err != nil {
		writeError(w, r, err, "log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
