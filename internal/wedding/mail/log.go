package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/wedding/pkg/idx"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// LogMailer writes messages to the context logger instead of sending
// them. It is used when no mail provider is configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	id := "log-" + idx.NewString()
	slogx.FromContext(ctx).Info("email not sent, no provider configured",
		slog.String("message_id", id),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return id, nil
}
