package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/mail"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// EmailService sends invitation emails built from the active invite
// template and the wedding settings.
type EmailService struct {
	Store  store.Store
	Clock  Clock
	Mailer mail.Mailer

	// BaseURL is the public site root; RSVP links are BaseURL/rsvp/{token}.
	BaseURL string
}

type SendResult struct {
	MessageID string
	Recipient string
	SentAt    time.Time
}

// SendInvite emails the invite to its first guest with an address and
// records when it went out.
func (s *EmailService) SendInvite(ctx context.Context, inviteID string) (*SendResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inviteID))

	// 1. Invite and recipient.
	inv, err := s.Store.Invites().FindByID(ctx, inviteID)
	if err != nil {
		return nil, mapMissing(err, "invite", domain.MsgInviteNotFound)
	}
	recipient, ok := inv.PrimaryContact()
	if !ok {
		return nil, ErrNoRecipient
	}

	// 2. Settings and template.
	settings, err := s.Store.Settings().Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSettingsMissing
	}
	if err != nil {
		return nil, err
	}
	tmpl, err := s.Store.EmailTemplates().FindActiveByType(ctx, domain.TemplateInvite)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTemplateMissing
	}
	if err != nil {
		return nil, err
	}

	// 3. Render and send.
	msg := mail.Template{Subject: tmpl.Subject, HTML: tmpl.HTMLContent}.
		Message(recipient.Email, s.inviteVars(inv, settings, tmpl))

	messageID, err := s.Mailer.Send(ctx, msg)
	if err != nil {
		log.Error("failed to send invite email", slog.String("template_id", tmpl.ID), slog.Any("error", err))
		return nil, err
	}

	// 4. Stamp the invite.
	now := s.Clock.Now()
	if err := s.Store.Invites().MarkSent(ctx, inv.ID, now); err != nil {
		log.Error("email sent but invite not marked", slog.String("message_id", messageID), slog.Any("error", err))
		return nil, err
	}

	log.Info("invite email sent", slog.String("message_id", messageID), slog.String("template_id", tmpl.ID))
	return &SendResult{MessageID: messageID, Recipient: recipient.Email, SentAt: now}, nil
}

func (s *EmailService) inviteVars(inv *domain.Invite, ws *domain.WeddingSettings, t *domain.EmailTemplate) map[string]string {
	vars := ws.TemplateVars()
	vars["guest_name"] = inv.DisplayName()
	vars["rsvp_url"] = strings.TrimSuffix(s.BaseURL, "/") + "/rsvp/" + inv.Token
	vars["adults_count"] = strconv.Itoa(inv.AdultsCount)
	vars["children_count"] = strconv.Itoa(inv.ChildrenCount)
	vars["hero_image_url"] = ""
	if t.HeroImageURL != nil {
		vars["hero_image_url"] = *t.HeroImageURL
	}
	return vars
}
