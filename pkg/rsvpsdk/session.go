package rsvpsdk

import (
	"context"
	"net/http"
	"time"
)

// Session is a logged-in admin. It is safe for concurrent use.
type Session struct {
	client *SDKClient

	token     string
	username  string
	expiresAt time.Time
}

func (s *Session) Token() string { return s.token }

func (s *Session) Username() string { return s.username }

// ExpiresAt is zero for sessions built with NewSessionFromToken.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Logout ends the session on the server. The Session is unusable
// afterwards.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Overview returns the RSVP dashboard totals and meal counts.
func (s *Session) Overview(ctx context.Context) (*Overview, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/admin/reports/overview", nil)
	if err != nil {
		return nil, err
	}

	var out Overview
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
