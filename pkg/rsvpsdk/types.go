package rsvpsdk

import "time"

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	// Error is a machine readable code such as "invalid_request".
	Error string `json:"error"`

	// ErrorDescription is safe to show to the person who made the request.
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Counters string `json:"counters,omitempty"`
}

// ============================================================================
// Invites and guests
// ============================================================================

type Guest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	IsPlusOne bool   `json:"isPlusOne"`
}

type Invite struct {
	ID             string     `json:"id"`
	Token          string     `json:"token"`
	GroupName      string     `json:"groupName,omitempty"`
	AdultsCount    int        `json:"adultsCount"`
	ChildrenCount  int        `json:"childrenCount"`
	PlusOneAllowed bool       `json:"plusOneAllowed"`
	Guests         []Guest    `json:"guests"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// InviteSummary is an invite in the admin listing.
type InviteSummary struct {
	Invite
	HasResponded bool  `json:"hasResponded"`
	RSVP         *RSVP `json:"rsvp,omitempty"`
}

// CreateIndividualInviteRequest is the body of POST /api/v1/admin/invites.
type CreateIndividualInviteRequest struct {
	GuestName      string `json:"guestName"`
	Email          string `json:"email"`
	PlusOneAllowed bool   `json:"plusOneAllowed"`
}

type GroupGuest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CreateGroupInviteRequest is the body of POST /api/v1/admin/invites/group.
type CreateGroupInviteRequest struct {
	GroupName     string       `json:"groupName"`
	AdultsCount   int          `json:"adultsCount"`
	ChildrenCount int          `json:"childrenCount"`
	Guests        []GroupGuest `json:"guests"`
}

type SendInviteResponse struct {
	MessageID string    `json:"messageId"`
	Recipient string    `json:"recipient"`
	SentAt    time.Time `json:"sentAt"`
}

// ============================================================================
// RSVP
// ============================================================================

// PlusOneGuestID addresses a meal selection to the plus-one named in the
// same submission.
const PlusOneGuestID = "PLUS_ONE"

type RSVP struct {
	ID                  string    `json:"id"`
	IsAttending         bool      `json:"isAttending"`
	AdultsAttending     int       `json:"adultsAttending"`
	ChildrenAttending   int       `json:"childrenAttending"`
	DietaryRequirements *string   `json:"dietaryRequirements,omitempty"`
	RespondedAt         time.Time `json:"respondedAt"`
}

type MealSelection struct {
	GuestID      string `json:"guestId"`
	MealOptionID string `json:"mealOptionId"`
	CourseType   string `json:"courseType"`
}

type QuestionResponse struct {
	QuestionID   string `json:"questionId"`
	ResponseText string `json:"responseText"`
}

// SubmitRSVPRequest is the body of POST /api/v1/rsvp/{token}. A null or
// absent mealSelections or questionResponses keeps what was stored; an
// empty list clears them.
type SubmitRSVPRequest struct {
	IsAttending         bool               `json:"isAttending"`
	AdultsAttending     int                `json:"adultsAttending"`
	ChildrenAttending   int                `json:"childrenAttending"`
	DietaryRequirements *string            `json:"dietaryRequirements,omitempty"`
	PlusOneName         string             `json:"plusOneName,omitempty"`
	MealSelections      []MealSelection    `json:"mealSelections"`
	QuestionResponses   []QuestionResponse `json:"questionResponses"`
}

type SubmitRSVPResponse struct {
	RSVPID         string `json:"rsvpId"`
	PlusOneGuestID string `json:"plusOneGuestId,omitempty"`
}

// InviteView is everything the public RSVP page needs.
type InviteView struct {
	Invite            Invite             `json:"invite"`
	HasResponded      bool               `json:"hasResponded"`
	RSVP              *RSVP              `json:"rsvp,omitempty"`
	MealSelections    []MealSelection    `json:"mealSelections"`
	QuestionResponses []QuestionResponse `json:"questionResponses"`
	MealOptions       []MealOption       `json:"mealOptions"`
	Questions         []Question         `json:"questions"`
	Settings          *WeddingSettings   `json:"settings,omitempty"`
}

// ============================================================================
// Catalog
// ============================================================================

type MealOption struct {
	ID          string  `json:"id"`
	CourseType  string  `json:"courseType"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

type CreateMealOptionRequest struct {
	CourseType  string  `json:"courseType"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// UpdateMealOptionRequest changes only the fields that are present.
type UpdateMealOptionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

type Question struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"questionText"`
	QuestionType string   `json:"questionType"`
	Options      []string `json:"options"`
	IsRequired   bool     `json:"isRequired"`
	DisplayOrder int      `json:"displayOrder"`
}

type CreateQuestionRequest struct {
	QuestionText string   `json:"questionText"`
	QuestionType string   `json:"questionType"`
	Options      []string `json:"options,omitempty"`
	IsRequired   bool     `json:"isRequired"`
	DisplayOrder int      `json:"displayOrder"`
}

// UpdateQuestionRequest changes only the fields that are present. The
// question type cannot be changed.
type UpdateQuestionRequest struct {
	QuestionText *string  `json:"questionText,omitempty"`
	Options      []string `json:"options,omitempty"`
	IsRequired   *bool    `json:"isRequired,omitempty"`
	DisplayOrder *int     `json:"displayOrder,omitempty"`
}

// ============================================================================
// Settings and templates
// ============================================================================

type WeddingSettings struct {
	Partner1Name   string     `json:"partner1Name"`
	Partner2Name   string     `json:"partner2Name"`
	WeddingDate    string     `json:"weddingDate"`
	WeddingTime    string     `json:"weddingTime"`
	VenueName      string     `json:"venueName"`
	VenueAddress   string     `json:"venueAddress"`
	DressCode      *string    `json:"dressCode,omitempty"`
	RSVPDeadline   *string    `json:"rsvpDeadline,omitempty"`
	RegistryURL    *string    `json:"registryUrl,omitempty"`
	AdditionalInfo *string    `json:"additionalInfo,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type EmailTemplate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TemplateType string    `json:"templateType"`
	Subject      string    `json:"subject"`
	HTMLContent  string    `json:"htmlContent"`
	HeroImageURL *string   `json:"heroImageUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EmailTemplateRequest creates a template, or replaces its content on
// update. TemplateType is ignored on update.
type EmailTemplateRequest struct {
	Name         string  `json:"name"`
	TemplateType string  `json:"templateType"`
	Subject      string  `json:"subject"`
	HTMLContent  string  `json:"htmlContent"`
	HeroImageURL *string `json:"heroImageUrl,omitempty"`
}

type ActivateTemplateRequest struct {
	IsActive bool `json:"isActive"`
}

// ============================================================================
// Admin sessions and reports
// ============================================================================

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

type MealTally struct {
	MealOptionID string  `json:"mealOptionId"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Count        int     `json:"count"`
}

type MealCounts struct {
	Starter []MealTally `json:"starter"`
	Main    []MealTally `json:"main"`
	Dessert []MealTally `json:"dessert"`
}

type Overview struct {
	TotalInvites         int        `json:"totalInvites"`
	InvitesSent          int        `json:"invitesSent"`
	TotalRSVPs           int        `json:"totalRsvps"`
	Attending            int        `json:"attending"`
	NotAttending         int        `json:"notAttending"`
	Pending              int        `json:"pending"`
	TotalGuestsAttending int        `json:"totalGuestsAttending"`
	MealCounts           MealCounts `json:"mealCounts"`
}
