package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/cryptox"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// maxTokenAttempts bounds how often a colliding token is regenerated.
const maxTokenAttempts = 5

var ErrTokenExhausted = errors.New("could not allocate a unique invite token")

type InviteService struct {
	Store store.Store
	Clock Clock

	// NewToken overrides token generation, for tests.
	NewToken func() (string, error)
}

type IndividualInviteInput struct {
	GuestName      string
	Email          string
	PlusOneAllowed bool
}

type GroupInviteInput struct {
	GroupName     string
	AdultsCount   int
	ChildrenCount int
	Guests        []domain.GuestInput
}

// InviteSummary pairs an invite with its response, nil while pending.
type InviteSummary struct {
	Invite *domain.Invite
	RSVP   *domain.RSVP
}

func (s InviteSummary) HasResponded() bool { return s.RSVP != nil }

// CreateIndividual issues an invite for one adult, optionally with a
// plus-one seat.
func (s *InviteService) CreateIndividual(ctx context.Context, in IndividualInviteInput) (*domain.Invite, error) {
	log := slogx.FromContext(ctx)

	inv, err := domain.NewIndividualInvite("", in.GuestName, in.Email, in.PlusOneAllowed, s.Clock.Now())
	if err != nil {
		log.Debug("individual invite rejected", slog.Any("error", err))
		return nil, err
	}
	if err := s.persist(ctx, inv); err != nil {
		return nil, err
	}

	log.Info("individual invite created",
		slog.String("invite_id", inv.ID),
		slog.Bool("plus_one_allowed", inv.PlusOneAllowed),
	)
	return inv, nil
}

// CreateGroup issues one invite for a named group of guests.
func (s *InviteService) CreateGroup(ctx context.Context, in GroupInviteInput) (*domain.Invite, error) {
	log := slogx.FromContext(ctx)

	inv, err := domain.NewGroupInvite("", in.GroupName, in.AdultsCount, in.ChildrenCount, in.Guests, s.Clock.Now())
	if err != nil {
		log.Debug("group invite rejected", slog.Any("error", err))
		return nil, err
	}
	if err := s.persist(ctx, inv); err != nil {
		return nil, err
	}

	log.Info("group invite created",
		slog.String("invite_id", inv.ID),
		slog.Int("adults", inv.AdultsCount),
		slog.Int("children", inv.ChildrenCount),
	)
	return inv, nil
}

// persist assigns a fresh token and stores the invite with its guests.
// The token column is unique, so a collision that slips past the
// existence check is retried with a new token.
func (s *InviteService) persist(ctx context.Context, inv *domain.Invite) error {
	log := slogx.FromContext(ctx)

	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		// 1. Draw a token nobody holds yet.
		token, err := s.uniqueToken(ctx)
		if err != nil {
			return err
		}
		inv.Token = token

		// 2. Write invite and guests together.
		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			return tx.Invites().Save(ctx, inv)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to save invite", slog.String("invite_id", inv.ID), slog.Any("error", err))
			return fmt.Errorf("save invite: %w", err)
		}
		log.Warn("invite token collided on insert", slog.Int("attempt", attempt))
	}
	return ErrTokenExhausted
}

func (s *InviteService) uniqueToken(ctx context.Context) (string, error) {
	gen := s.NewToken
	if gen == nil {
		gen = cryptox.GenerateInviteToken
	}

	for range maxTokenAttempts {
		token, err := gen()
		if err != nil {
			return "", fmt.Errorf("generate invite token: %w", err)
		}
		taken, err := s.Store.Invites().ExistsByToken(ctx, token)
		if err != nil {
			return "", fmt.Errorf("check invite token: %w", err)
		}
		if !taken {
			return token, nil
		}
	}
	return "", ErrTokenExhausted
}

// Get loads an invite by id.
func (s *InviteService) Get(ctx context.Context, id string) (*domain.Invite, error) {
	inv, err := s.Store.Invites().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("invite", domain.MsgInviteNotFound)
		}
		return nil, err
	}
	return inv, nil
}

// FindByToken resolves the public token to its invite.
func (s *InviteService) FindByToken(ctx context.Context, token string) (*domain.Invite, error) {
	inv, err := s.Store.Invites().FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Debug("unknown invite token",
				slog.String("token_fp", cryptox.ShortFingerprint(token)),
			)
			return nil, domain.NotFound("invite", domain.MsgInviteNotFound)
		}
		return nil, err
	}
	return inv, nil
}

// List returns every invite with its response. Responses are fetched in
// a single batch lookup.
func (s *InviteService) List(ctx context.Context) ([]InviteSummary, error) {
	log := slogx.FromContext(ctx)

	invites, err := s.Store.Invites().FindAll(ctx)
	if err != nil {
		log.Error("failed to list invites", slog.Any("error", err))
		return nil, err
	}

	ids := make([]string, 0, len(invites))
	for _, inv := range invites {
		ids = append(ids, inv.ID)
	}
	rsvps, err := s.Store.RSVPs().FindByInviteIDs(ctx, ids)
	if err != nil {
		log.Error("failed to load responses", slog.Any("error", err))
		return nil, err
	}

	out := make([]InviteSummary, 0, len(invites))
	for _, inv := range invites {
		out = append(out, InviteSummary{Invite: inv, RSVP: rsvps[inv.ID]})
	}
	return out, nil
}

// Delete removes an invite together with its guests, response and
// selections.
func (s *InviteService) Delete(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Invites().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFound("invite", domain.MsgInviteNotFound)
		}
		log.Error("failed to delete invite", slog.String("invite_id", id), slog.Any("error", err))
		return err
	}

	log.Info("invite deleted", slog.String("invite_id", id))
	return nil
}
