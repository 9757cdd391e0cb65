package domain

import "time"

// WeddingSettings holds the event details shown to guests and used to
// fill email templates. There is one per deployment.
type WeddingSettings struct {
	Partner1Name   string
	Partner2Name   string
	WeddingDate    string
	WeddingTime    string
	VenueName      string
	VenueAddress   string
	DressCode      *string
	RSVPDeadline   *string
	RegistryURL    *string
	AdditionalInfo *string
	UpdatedAt      time.Time
}

// NewWeddingSettings validates and normalizes s.
func NewWeddingSettings(s WeddingSettings, now time.Time) (*WeddingSettings, error) {
	required := []struct {
		value string
		label string
	}{
		{s.Partner1Name, "Partner 1 name"},
		{s.Partner2Name, "Partner 2 name"},
		{s.WeddingDate, "Wedding date"},
		{s.WeddingTime, "Wedding time"},
		{s.VenueName, "Venue name"},
		{s.VenueAddress, "Venue address"},
	}
	for _, f := range required {
		if isBlank(f.value) {
			return nil, Invalid("%s is required", f.label)
		}
	}
	if s.RegistryURL != nil && !isBlank(*s.RegistryURL) && !isAbsoluteHTTPURL(*s.RegistryURL) {
		return nil, Invalid("Invalid registry URL format")
	}

	return &WeddingSettings{
		Partner1Name:   CleanText(s.Partner1Name),
		Partner2Name:   CleanText(s.Partner2Name),
		WeddingDate:    CleanText(s.WeddingDate),
		WeddingTime:    CleanText(s.WeddingTime),
		VenueName:      CleanText(s.VenueName),
		VenueAddress:   CleanText(s.VenueAddress),
		DressCode:      optionalText(s.DressCode),
		RSVPDeadline:   optionalText(s.RSVPDeadline),
		RegistryURL:    optionalText(s.RegistryURL),
		AdditionalInfo: optionalText(s.AdditionalInfo),
		UpdatedAt:      now,
	}, nil
}

// TemplateVars returns the settings as email template variables. Unset
// optional fields map to "".
func (s *WeddingSettings) TemplateVars() map[string]string {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return map[string]string{
		"partner1_name":   s.Partner1Name,
		"partner2_name":   s.Partner2Name,
		"wedding_date":    s.WeddingDate,
		"wedding_time":    s.WeddingTime,
		"venue_name":      s.VenueName,
		"venue_address":   s.VenueAddress,
		"dress_code":      deref(s.DressCode),
		"rsvp_deadline":   deref(s.RSVPDeadline),
		"registry_url":    deref(s.RegistryURL),
		"additional_info": deref(s.AdditionalInfo),
	}
}
