package http

import (
	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

// Mapping between domain values and their wire form. Slices are never
// nil so lists always encode as [].

func toInvite(inv *domain.Invite) rsvpsdk.Invite {
	guests := make([]rsvpsdk.Guest, 0, len(inv.Guests))
	for _, g := range inv.Guests {
		guests = append(guests, rsvpsdk.Guest{
			ID:        g.ID,
			Name:      g.Name,
			Email:     g.Email,
			IsPlusOne: g.IsPlusOne,
		})
	}
	return rsvpsdk.Invite{
		ID:             inv.ID,
		Token:          inv.Token,
		GroupName:      inv.GroupName,
		AdultsCount:    inv.AdultsCount,
		ChildrenCount:  inv.ChildrenCount,
		PlusOneAllowed: inv.PlusOneAllowed,
		Guests:         guests,
		SentAt:         inv.SentAt,
		CreatedAt:      inv.CreatedAt,
	}
}

func toRSVP(r *domain.RSVP) *rsvpsdk.RSVP {
	if r == nil {
		return nil
	}
	return &rsvpsdk.RSVP{
		ID:                  r.ID,
		IsAttending:         r.IsAttending,
		AdultsAttending:     r.AdultsAttending,
		ChildrenAttending:   r.ChildrenAttending,
		DietaryRequirements: r.DietaryRequirements,
		RespondedAt:         r.RespondedAt,
	}
}

func toInviteSummaries(in []service.InviteSummary) []rsvpsdk.InviteSummary {
	out := make([]rsvpsdk.InviteSummary, 0, len(in))
	for _, s := range in {
		out = append(out, rsvpsdk.InviteSummary{
			Invite:       toInvite(s.Invite),
			HasResponded: s.HasResponded(),
			RSVP:         toRSVP(s.RSVP),
		})
	}
	return out
}

func toMealOption(m *domain.MealOption) rsvpsdk.MealOption {
	return rsvpsdk.MealOption{
		ID:          m.ID,
		CourseType:  string(m.CourseType),
		Name:        m.Name,
		Description: m.Description,
		IsAvailable: m.IsAvailable,
	}
}

func toMealOptions(in []*domain.MealOption) []rsvpsdk.MealOption {
	out := make([]rsvpsdk.MealOption, 0, len(in))
	for _, m := range in {
		out = append(out, toMealOption(m))
	}
	return out
}

func toQuestion(q *domain.CustomQuestion) rsvpsdk.Question {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	return rsvpsdk.Question{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		QuestionType: string(q.QuestionType),
		Options:      options,
		IsRequired:   q.IsRequired,
		DisplayOrder: q.DisplayOrder,
	}
}

func toQuestions(in []*domain.CustomQuestion) []rsvpsdk.Question {
	out := make([]rsvpsdk.Question, 0, len(in))
	for _, q := range in {
		out = append(out, toQuestion(q))
	}
	return out
}

func toSettings(s *domain.WeddingSettings) *rsvpsdk.WeddingSettings {
	if s == nil {
		return nil
	}
	updated := s.UpdatedAt
	return &rsvpsdk.WeddingSettings{
		Partner1Name:   s.Partner1Name,
		Partner2Name:   s.Partner2Name,
		WeddingDate:    s.WeddingDate,
		WeddingTime:    s.WeddingTime,
		VenueName:      s.VenueName,
		VenueAddress:   s.VenueAddress,
		DressCode:      s.DressCode,
		RSVPDeadline:   s.RSVPDeadline,
		RegistryURL:    s.RegistryURL,
		AdditionalInfo: s.AdditionalInfo,
		UpdatedAt:      &updated,
	}
}

func fromSettings(s rsvpsdk.WeddingSettings) domain.WeddingSettings {
	return domain.WeddingSettings{
		Partner1Name:   s.Partner1Name,
		Partner2Name:   s.Partner2Name,
		WeddingDate:    s.WeddingDate,
		WeddingTime:    s.WeddingTime,
		VenueName:      s.VenueName,
		VenueAddress:   s.VenueAddress,
		DressCode:      s.DressCode,
		RSVPDeadline:   s.RSVPDeadline,
		RegistryURL:    s.RegistryURL,
		AdditionalInfo: s.AdditionalInfo,
	}
}

func toTemplate(t *domain.EmailTemplate) rsvpsdk.EmailTemplate {
	return rsvpsdk.EmailTemplate{
		ID:           t.ID,
		Name:         t.Name,
		TemplateType: string(t.TemplateType),
		Subject:      t.Subject,
		HTMLContent:  t.HTMLContent,
		HeroImageURL: t.HeroImageURL,
		IsActive:     t.IsActive,
		UpdatedAt:    t.UpdatedAt,
	}
}

func fromTemplate(req rsvpsdk.EmailTemplateRequest) domain.EmailTemplateInput {
	return domain.EmailTemplateInput{
		Name:         req.Name,
		TemplateType: domain.TemplateType(req.TemplateType),
		Subject:      req.Subject,
		HTMLContent:  req.HTMLContent,
		HeroImageURL: req.HeroImageURL,
	}
}

func toInviteView(v *service.InviteView) rsvpsdk.InviteView {
	selections := make([]rsvpsdk.MealSelection, 0, len(v.MealSelections))
	for _, s := range v.MealSelections {
		selections = append(selections, rsvpsdk.MealSelection{
			GuestID:      s.GuestID,
			MealOptionID: s.MealOptionID,
			CourseType:   string(s.CourseType),
		})
	}
	responses := make([]rsvpsdk.QuestionResponse, 0, len(v.QuestionResponses))
	for _, qr := range v.QuestionResponses {
		responses = append(responses, rsvpsdk.QuestionResponse{
			QuestionID:   qr.QuestionID,
			ResponseText: qr.ResponseText,
		})
	}
	return rsvpsdk.InviteView{
		Invite:            toInvite(v.Invite),
		HasResponded:      v.HasResponded(),
		RSVP:              toRSVP(v.RSVP),
		MealSelections:    selections,
		QuestionResponses: responses,
		MealOptions:       toMealOptions(v.MealOptions),
		Questions:         toQuestions(v.Questions),
		Settings:          toSettings(v.Settings),
	}
}

// fromSubmit keeps the distinction between an absent list (nil, keep)
// and an empty one (clear).
func fromSubmit(token string, req rsvpsdk.SubmitRSVPRequest) service.SubmitInput {
	in := service.SubmitInput{
		Token:               token,
		IsAttending:         req.IsAttending,
		AdultsAttending:     req.AdultsAttending,
		ChildrenAttending:   req.ChildrenAttending,
		DietaryRequirements: req.DietaryRequirements,
		PlusOneName:         req.PlusOneName,
	}
	if req.MealSelections != nil {
		in.MealSelections = make([]domain.MealSelectionInput, 0, len(req.MealSelections))
		for _, s := range req.MealSelections {
			in.MealSelections = append(in.MealSelections, domain.MealSelectionInput{
				Guest:        domain.ParseGuestRef(s.GuestID),
				MealOptionID: s.MealOptionID,
				CourseType:   domain.CourseType(s.CourseType),
			})
		}
	}
	if req.QuestionResponses != nil {
		in.QuestionResponses = make([]domain.QuestionResponseInput, 0, len(req.QuestionResponses))
		for _, qr := range req.QuestionResponses {
			in.QuestionResponses = append(in.QuestionResponses, domain.QuestionResponseInput{
				QuestionID:   qr.QuestionID,
				ResponseText: qr.ResponseText,
			})
		}
	}
	return in
}

func toTallies(in []service.MealTally) []rsvpsdk.MealTally {
	out := make([]rsvpsdk.MealTally, 0, len(in))
	for _, t := range in {
		out = append(out, rsvpsdk.MealTally{
			MealOptionID: t.MealOptionID,
			Name:         t.Name,
			Description:  t.Description,
			Count:        t.Count,
		})
	}
	return out
}

func toOverview(o *service.Overview) rsvpsdk.Overview {
	return rsvpsdk.Overview{
		TotalInvites:         o.TotalInvites,
		InvitesSent:          o.InvitesSent,
		TotalRSVPs:           o.TotalRSVPs,
		Attending:            o.Attending,
		NotAttending:         o.NotAttending,
		Pending:              o.Pending,
		TotalGuestsAttending: o.TotalGuestsAttending,
		MealCounts: rsvpsdk.MealCounts{
			Starter: toTallies(o.MealCounts.Starter),
			Main:    toTallies(o.MealCounts.Main),
			Dessert: toTallies(o.MealCounts.Dessert),
		},
	}
}
