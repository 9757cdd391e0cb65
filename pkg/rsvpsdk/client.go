package rsvpsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient talks to the public endpoints of the RSVP service and opens
// admin Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service and its backing stores are ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetInvite loads the RSVP page data for an invite token.
func (c *SDKClient) GetInvite(ctx context.Context, token string) (*InviteView, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/rsvp/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var view InviteView
	if err := decodeJSON(resp, &view, http.StatusOK); err != nil {
		return nil, err
	}
	return &view, nil
}

// SubmitRSVP creates or replaces the response for an invite token.
func (c *SDKClient) SubmitRSVP(ctx context.Context, token string, req SubmitRSVPRequest) (*SubmitRSVPResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/rsvp/"+url.PathEscape(token), req)
	if err != nil {
		return nil, err
	}

	var out SubmitRSVPResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges admin credentials for a Session.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/admin/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var login LoginResponse
	if err := decodeJSON(resp, &login, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{
		client:    c,
		token:     login.Token,
		username:  login.Username,
		expiresAt: login.ExpiresAt,
	}, nil
}

// NewSessionFromToken wraps a token obtained earlier, for example one
// kept by a CLI between runs.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
