package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

type ReportService struct {
	Store store.Store
}

// Overview is the dashboard summary.
type Overview struct {
	TotalInvites         int
	InvitesSent          int
	TotalRSVPs           int
	Attending            int
	NotAttending         int
	Pending              int
	TotalGuestsAttending int
	MealCounts           MealCounts
}

// MealCounts lists every meal option with how many attending guests
// picked it, per course.
type MealCounts struct {
	Starter []MealTally
	Main    []MealTally
	Dessert []MealTally
}

type MealTally struct {
	MealOptionID string
	Name         string
	Description  *string
	Count        int
}

func (s *ReportService) Overview(ctx context.Context) (*Overview, error) {
	log := slogx.FromContext(ctx)

	invites, err := s.Store.Invites().FindAll(ctx)
	if err != nil {
		log.Error("failed to load invites", slog.Any("error", err))
		return nil, fmt.Errorf("load invites: %w", err)
	}
	ids := make([]string, 0, len(invites))
	for _, inv := range invites {
		ids = append(ids, inv.ID)
	}
	rsvps, err := s.Store.RSVPs().FindByInviteIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load rsvps: %w", err)
	}

	o := &Overview{TotalInvites: len(invites)}
	for _, inv := range invites {
		if inv.SentAt != nil {
			o.InvitesSent++
		}
		r, ok := rsvps[inv.ID]
		if !ok {
			o.Pending++
			continue
		}
		o.TotalRSVPs++
		if r.IsAttending {
			o.Attending++
			o.TotalGuestsAttending += r.Attendance().Headcount()
		} else {
			o.NotAttending++
		}
	}

	if o.MealCounts, err = s.mealCounts(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *ReportService) mealCounts(ctx context.Context) (MealCounts, error) {
	var out MealCounts

	counts, err := s.Store.MealSelections().CountByOption(ctx)
	if err != nil {
		return out, fmt.Errorf("count meal selections: %w", err)
	}
	options, err := s.Store.MealOptions().FindAll(ctx, false)
	if err != nil {
		return out, fmt.Errorf("load meal options: %w", err)
	}
	descriptions := make(map[string]*string, len(options))
	for _, o := range options {
		descriptions[o.ID] = o.Description
	}

	for _, c := range counts {
		t := MealTally{
			MealOptionID: c.MealOptionID,
			Name:         c.Name,
			Description:  descriptions[c.MealOptionID],
			Count:        c.Count,
		}
		switch c.CourseType {
		case domain.CourseStarter:
			out.Starter = append(out.Starter, t)
		case domain.CourseMain:
			out.Main = append(out.Main, t)
		case domain.CourseDessert:
			out.Dessert = append(out.Dessert, t)
		}
	}
	return out, nil
}
