package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/cryptox"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// RSVPService records responses against invite tokens. Submissions for
// the same invite are serialised in process; each one runs its writes in
// a single transaction.
type RSVPService struct {
	Store store.Store
	Clock Clock

	locks keyedMutex
}

// SubmitInput is one response as sent by a guest. A nil MealSelections
// or QuestionResponses leaves the stored ones alone; an empty slice
// clears them.
type SubmitInput struct {
	Token               string
	IsAttending         bool
	AdultsAttending     int
	ChildrenAttending   int
	DietaryRequirements *string
	PlusOneName         string
	MealSelections      []domain.MealSelectionInput
	QuestionResponses   []domain.QuestionResponseInput
}

func (in SubmitInput) attendance() domain.Attendance {
	return domain.Attendance{
		IsAttending:         in.IsAttending,
		AdultsAttending:     in.AdultsAttending,
		ChildrenAttending:   in.ChildrenAttending,
		DietaryRequirements: in.DietaryRequirements,
	}
}

// SubmitResult identifies what the submission wrote. PlusOneGuestID is
// empty when the invite has no plus-one afterwards.
type SubmitResult struct {
	RSVPID         string
	PlusOneGuestID string
}

// Submit validates a response in full and then applies it atomically:
// plus-one reconciliation, RSVP upsert, meal selection and question
// response replacement.
func (s *RSVPService) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("token_fp", cryptox.ShortFingerprint(in.Token)))

	// 1. Resolve the invite.
	inv, err := s.Store.Invites().FindByToken(ctx, in.Token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("rsvp for unknown token")
			return SubmitResult{}, domain.NotFound("invite", domain.MsgInviteNotFound)
		}
		log.Error("failed to load invite", slog.Any("error", err))
		return SubmitResult{}, err
	}
	log = log.With(slog.String("invite_id", inv.ID))

	// 2. Validate everything before touching storage.
	plan, err := s.plan(ctx, inv, in)
	if err != nil {
		log.Debug("rsvp rejected", slog.Any("error", err))
		return SubmitResult{}, err
	}

	// 3. One submission per invite at a time.
	unlock := s.locks.Lock(inv.ID)
	defer unlock()

	// 4. Apply.
	var result SubmitResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		result, err = s.apply(ctx, tx, inv, in, plan)
		return err
	})
	if err != nil {
		log.Error("failed to store rsvp", slog.Any("error", err))
		return SubmitResult{}, err
	}

	log.Info("rsvp recorded",
		slog.String("rsvp_id", result.RSVPID),
		slog.Bool("attending", in.IsAttending),
		slog.Int("adults", in.AdultsAttending),
		slog.Int("children", in.ChildrenAttending),
		slog.Bool("plus_one", result.PlusOneGuestID != ""),
	)
	return result, nil
}

// submitPlan is the validated form of a SubmitInput.
type submitPlan struct {
	plusOneName string
	keepPlusOne bool

	// plusOne is minted when the invite has no plus-one yet.
	plusOne *domain.Guest

	replaceMeals     bool
	replaceResponses bool
}

func (s *RSVPService) plan(ctx context.Context, inv *domain.Invite, in SubmitInput) (submitPlan, error) {
	now := s.Clock.Now()
	p := submitPlan{plusOneName: strings.TrimSpace(in.PlusOneName)}

	if err := inv.CheckPlusOne(p.plusOneName); err != nil {
		return p, err
	}
	if err := inv.CheckCapacity(in.IsAttending, in.AdultsAttending, in.ChildrenAttending); err != nil {
		return p, err
	}
	if err := in.attendance().Validate(); err != nil {
		return p, err
	}

	p.keepPlusOne = in.IsAttending && p.plusOneName != ""
	if p.keepPlusOne {
		g, err := domain.NewPlusOneGuest(inv.ID, p.plusOneName, now)
		if err != nil {
			return p, err
		}
		p.plusOne = g
	}

	p.replaceMeals = in.IsAttending && in.MealSelections != nil
	if p.replaceMeals {
		if err := s.checkMealSelections(ctx, inv, in.MealSelections, p.keepPlusOne); err != nil {
			return p, err
		}
	}

	p.replaceResponses = in.IsAttending && in.QuestionResponses != nil
	if p.replaceResponses {
		if err := s.checkResponses(ctx, in.QuestionResponses); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s *RSVPService) checkMealSelections(ctx context.Context, inv *domain.Invite, selections []domain.MealSelectionInput, keepPlusOne bool) error {
	if len(selections) == 0 {
		return nil
	}

	options, err := s.Store.MealOptions().FindAll(ctx, false)
	if err != nil {
		return fmt.Errorf("load meal options: %w", err)
	}
	byID := make(map[string]*domain.MealOption, len(options))
	for _, o := range options {
		byID[o.ID] = o
	}

	var existingPlusOne string
	if g := inv.PlusOne(); g != nil {
		existingPlusOne = g.ID
	}

	seen := make(map[string]bool, len(selections))
	for _, sel := range selections {
		if err := sel.Validate(); err != nil {
			return err
		}

		opt, ok := byID[sel.MealOptionID]
		if !ok {
			return domain.Invalid("Meal option not found")
		}
		if opt.CourseType != sel.CourseType {
			return domain.Invalid("Meal option %q is not a %s course", opt.Name, strings.ToLower(string(sel.CourseType)))
		}

		switch {
		case sel.Guest.IsPlusOne():
			if !keepPlusOne {
				return domain.Invalid("Meal selection references a plus one that was not provided")
			}
		default:
			id := sel.Guest.String()
			declared := inv.HasGuest(id) && id != existingPlusOne
			survivingPlusOne := keepPlusOne && id != "" && id == existingPlusOne
			if !declared && !survivingPlusOne {
				return domain.Invalid("Meal selection references a guest that is not on this invite")
			}
		}

		key := sel.Guest.String() + "/" + string(sel.CourseType)
		if existingPlusOne != "" && sel.Guest.IsPlusOne() {
			key = existingPlusOne + "/" + string(sel.CourseType)
		}
		if seen[key] {
			return domain.Invalid("Only one %s can be selected per guest", strings.ToLower(string(sel.CourseType)))
		}
		seen[key] = true
	}
	return nil
}

func (s *RSVPService) checkResponses(ctx context.Context, responses []domain.QuestionResponseInput) error {
	if len(responses) == 0 {
		return nil
	}

	questions, err := s.Store.Questions().FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	for _, r := range responses {
		if strings.TrimSpace(r.QuestionID) == "" {
			return domain.Invalid("Question ID is required")
		}
		if !known[r.QuestionID] {
			return domain.Invalid("Question not found")
		}
	}
	return nil
}

// apply runs inside the submission transaction. Only tx repositories are
// used here.
func (s *RSVPService) apply(ctx context.Context, tx store.Tx, inv *domain.Invite, in SubmitInput, p submitPlan) (SubmitResult, error) {
	now := s.Clock.Now()

	// 1. Reconcile the plus-one before selections so a new one can be
	// referenced and a withdrawn one leaves no selections behind.
	plusOneID, err := s.reconcilePlusOne(ctx, tx, inv, p, now)
	if err != nil {
		return SubmitResult{}, err
	}

	// 2. Upsert the single RSVP for this invite.
	rsvp, err := tx.RSVPs().FindByInviteID(ctx, inv.ID)
	switch {
	case err == nil:
		if err := rsvp.UpdateAttendance(in.attendance(), now); err != nil {
			return SubmitResult{}, err
		}
	case errors.Is(err, store.ErrNotFound):
		rsvp, err = domain.NewRSVP(inv.ID, in.attendance(), now)
		if err != nil {
			return SubmitResult{}, err
		}
	default:
		return SubmitResult{}, fmt.Errorf("load rsvp: %w", err)
	}
	if err := tx.RSVPs().Save(ctx, rsvp); err != nil {
		return SubmitResult{}, fmt.Errorf("save rsvp: %w", err)
	}

	// 3. Meal selections.
	switch {
	case !in.IsAttending:
		for _, g := range inv.DeclaredGuests() {
			if err := tx.MealSelections().DeleteByGuestID(ctx, g.ID); err != nil {
				return SubmitResult{}, fmt.Errorf("clear meal selections: %w", err)
			}
		}
	case p.replaceMeals:
		if err := replaceMealSelections(ctx, tx, inv, in.MealSelections, plusOneID, now); err != nil {
			return SubmitResult{}, err
		}
	}

	// 4. Question responses.
	if p.replaceResponses {
		if err := replaceResponses(ctx, tx, rsvp.ID, in.QuestionResponses, now); err != nil {
			return SubmitResult{}, err
		}
	}

	return SubmitResult{RSVPID: rsvp.ID, PlusOneGuestID: plusOneID}, nil
}

// reconcilePlusOne renames, mints or removes the plus-one guest and
// returns its id, empty when the invite ends up without one.
func (s *RSVPService) reconcilePlusOne(ctx context.Context, tx store.Tx, inv *domain.Invite, p submitPlan, now time.Time) (string, error) {
	log := slogx.FromContext(ctx)

	existing, err := tx.Guests().FindPlusOneByInviteID(ctx, inv.ID)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("load plus one: %w", err)
	}

	switch {
	case p.keepPlusOne && found:
		if err := existing.Rename(p.plusOneName, now); err != nil {
			return "", err
		}
		saved, err := tx.Guests().Save(ctx, existing)
		if err != nil {
			return "", fmt.Errorf("rename plus one: %w", err)
		}
		return saved.ID, nil

	case p.keepPlusOne:
		saved, err := tx.Guests().Save(ctx, *p.plusOne)
		if err != nil {
			return "", fmt.Errorf("create plus one: %w", err)
		}
		log.Debug("plus one added", slog.String("guest_id", saved.ID))
		return saved.ID, nil

	case found:
		if err := tx.MealSelections().DeleteByGuestID(ctx, existing.ID); err != nil {
			return "", fmt.Errorf("clear plus one selections: %w", err)
		}
		if err := tx.Guests().Delete(ctx, existing.ID); err != nil {
			return "", fmt.Errorf("remove plus one: %w", err)
		}
		log.Debug("plus one removed", slog.String("guest_id", existing.ID))
	}
	return "", nil
}

func replaceMealSelections(ctx context.Context, tx store.Tx, inv *domain.Invite, inputs []domain.MealSelectionInput, plusOneID string, now time.Time) error {
	guestIDs := make([]string, 0, len(inv.Guests)+1)
	for _, g := range inv.DeclaredGuests() {
		guestIDs = append(guestIDs, g.ID)
	}
	if plusOneID != "" {
		guestIDs = append(guestIDs, plusOneID)
	}
	for _, id := range guestIDs {
		if err := tx.MealSelections().DeleteByGuestID(ctx, id); err != nil {
			return fmt.Errorf("clear meal selections: %w", err)
		}
	}

	selections := make([]domain.MealSelection, 0, len(inputs))
	for _, in := range inputs {
		guestID, err := in.Guest.Resolve(plusOneID)
		if err != nil {
			return err
		}
		sel, err := domain.NewMealSelection(guestID, in.MealOptionID, in.CourseType, now)
		if err != nil {
			return err
		}
		selections = append(selections, *sel)
	}
	if err := tx.MealSelections().SaveMany(ctx, selections); err != nil {
		return fmt.Errorf("save meal selections: %w", err)
	}
	return nil
}

func replaceResponses(ctx context.Context, tx store.Tx, rsvpID string, inputs []domain.QuestionResponseInput, now time.Time) error {
	if err := tx.QuestionResponses().DeleteByRSVPID(ctx, rsvpID); err != nil {
		return fmt.Errorf("clear question responses: %w", err)
	}

	responses := make([]domain.QuestionResponse, 0, len(inputs))
	for _, in := range inputs {
		if in.IsEmpty() {
			continue
		}
		r, err := domain.NewQuestionResponse(rsvpID, in, now)
		if err != nil {
			return err
		}
		responses = append(responses, *r)
	}
	if err := tx.QuestionResponses().SaveMany(ctx, responses); err != nil {
		return fmt.Errorf("save question responses: %w", err)
	}
	return nil
}

// InviteView is everything a guest sees when opening their invite link.
type InviteView struct {
	Invite            *domain.Invite
	RSVP              *domain.RSVP // nil until the invite has responded
	MealSelections    []domain.MealSelection
	QuestionResponses []domain.QuestionResponse
	MealOptions       []*domain.MealOption // available options only
	Questions         []*domain.CustomQuestion
	Settings          *domain.WeddingSettings // nil until configured
}

func (v InviteView) HasResponded() bool { return v.RSVP != nil }

// View loads the public state behind an invite token.
func (s *RSVPService) View(ctx context.Context, token string) (*InviteView, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invites().FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("view for unknown token", slog.String("token_fp", cryptox.ShortFingerprint(token)))
			return nil, domain.NotFound("invite", domain.MsgInviteNotFound)
		}
		return nil, err
	}
	view := &InviteView{Invite: inv}

	rsvp, err := s.Store.RSVPs().FindByInviteID(ctx, inv.ID)
	switch {
	case err == nil:
		view.RSVP = rsvp
		if view.QuestionResponses, err = s.Store.QuestionResponses().FindByRSVPID(ctx, rsvp.ID); err != nil {
			return nil, fmt.Errorf("load question responses: %w", err)
		}
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("load rsvp: %w", err)
	}

	if view.MealSelections, err = s.Store.MealSelections().FindByInviteID(ctx, inv.ID); err != nil {
		return nil, fmt.Errorf("load meal selections: %w", err)
	}
	if view.MealOptions, err = s.Store.MealOptions().FindAll(ctx, true); err != nil {
		return nil, fmt.Errorf("load meal options: %w", err)
	}
	if view.Questions, err = s.Store.Questions().FindAll(ctx); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	settings, err := s.Store.Settings().Get(ctx)
	switch {
	case err == nil:
		view.Settings = settings
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return view, nil
}
