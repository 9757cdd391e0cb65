package rsvpsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListInvites returns every invite with its guests and response status.
func (s *Session) ListInvites(ctx context.Context) ([]InviteSummary, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/admin/invites", nil)
	if err != nil {
		return nil, err
	}

	var out []InviteSummary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIndividualInvite creates an invite for one guest.
func (s *Session) CreateIndividualInvite(ctx context.Context, req CreateIndividualInviteRequest) (*Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/invites", req)
	if err != nil {
		return nil, err
	}

	var out Invite
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGroupInvite creates an invite for a family or group.
func (s *Session) CreateGroupInvite(ctx context.Context, req CreateGroupInviteRequest) (*Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/invites/group", req)
	if err != nil {
		return nil, err
	}

	var out Invite
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetInvite(ctx context.Context, id string) (*Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/admin/invites/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out Invite
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvite removes an invite together with its guests and response.
func (s *Session) DeleteInvite(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/admin/invites/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SendInvite emails the invite using the active invite template.
func (s *Session) SendInvite(ctx context.Context, id string) (*SendInviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/invites/"+url.PathEscape(id)+"/send", nil)
	if err != nil {
		return nil, err
	}

	var out SendInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
