package rsvpsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Wedding settings
// ============================================================================

// GetSettings returns the wedding details. It fails with a 404
// *APIError until they have been saved once.
func (s *Session) GetSettings(ctx context.Context) (*WeddingSettings, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/admin/settings", nil)
	if err != nil {
		return nil, err
	}

	var out WeddingSettings
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces the wedding details. UpdatedAt is ignored.
func (s *Session) UpdateSettings(ctx context.Context, req WeddingSettings) (*WeddingSettings, error) {
	req.UpdatedAt = nil
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/v1/admin/settings", req)
	if err != nil {
		return nil, err
	}

	var out WeddingSettings
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Email templates
// ============================================================================

func (s *Session) ListTemplates(ctx context.Context) ([]EmailTemplate, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/admin/templates", nil)
	if err != nil {
		return nil, err
	}

	var out []EmailTemplate
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTemplate stores a template and makes it the active one of its
// type.
func (s *Session) CreateTemplate(ctx context.Context, req EmailTemplateRequest) (*EmailTemplate, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/templates", req)
	if err != nil {
		return nil, err
	}

	var out EmailTemplate
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateTemplate(ctx context.Context, id string, req EmailTemplateRequest) (*EmailTemplate, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/v1/admin/templates/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out EmailTemplate
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetTemplateActive activates or deactivates a template. Activating one
// deactivates the others of the same type.
func (s *Session) SetTemplateActive(ctx context.Context, id string, active bool) (*EmailTemplate, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/templates/"+url.PathEscape(id)+"/activate",
		ActivateTemplateRequest{IsActive: active})
	if err != nil {
		return nil, err
	}

	var out EmailTemplate
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteTemplate(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/admin/templates/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
