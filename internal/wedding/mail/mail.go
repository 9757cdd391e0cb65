// Package mail renders and delivers the emails sent to guests.
package mail

import (
	"context"
	"errors"
)

// DefaultFrom is used when no sender is configured.
const DefaultFrom = "Wedding RSVP <onboarding@resend.dev>"

// ErrSendFailed wraps every delivery failure.
var ErrSendFailed = errors.New("failed to send email")

// Message is one rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a message and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
