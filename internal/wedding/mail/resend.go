package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

const DefaultResendURL = "https://api.resend.com/emails"

// Resend delivers mail through the Resend HTTP API.
type Resend struct {
	APIKey     string
	From       string
	Endpoint   string
	HTTPClient *http.Client
}

func NewResend(apiKey, from string) *Resend {
	if from == "" {
		from = DefaultFrom
	}
	return &Resend{
		APIKey:   apiKey,
		From:     from,
		Endpoint: DefaultResendURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	log := slogx.FromContext(ctx)

	body, err := json.Marshal(resendRequest{
		From:    r.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrSendFailed, err)
	}

	var out resendResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode/100 != 2 {
		reason := out.Message
		if reason == "" {
			reason = strings.TrimSpace(string(raw))
		}
		log.Warn("resend rejected email", "status", resp.StatusCode, "reason", reason)
		return "", fmt.Errorf("%w: %s (status %d)", ErrSendFailed, reason, resp.StatusCode)
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: no message id returned", ErrSendFailed)
	}

	log.Debug("email accepted by resend", "message_id", out.ID)
	return out.ID, nil
}
