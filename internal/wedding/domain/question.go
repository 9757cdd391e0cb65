package domain

import (
	"time"

	"github.com/aussiebroadwan/wedding/pkg/idx"
)

type QuestionType string

const (
	QuestionText           QuestionType = "TEXT"
	QuestionSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionSingleChoice, QuestionMultipleChoice:
		return true
	}
	return false
}

func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultipleChoice
}

// CustomQuestion is an extra question shown on the RSVP form.
type CustomQuestion struct {
	ID           string
	QuestionText string
	QuestionType QuestionType
	Options      []string
	IsRequired   bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomQuestionInput struct {
	QuestionText string
	QuestionType QuestionType
	Options      []string
	IsRequired   bool
	DisplayOrder int
}

func NewCustomQuestion(in CustomQuestionInput, now time.Time) (*CustomQuestion, error) {
	if !in.QuestionType.Valid() {
		return nil, Invalid("Invalid question type")
	}
	q := &CustomQuestion{
		ID:           idx.NewString(),
		QuestionType: in.QuestionType,
		CreatedAt:    now,
	}
	if err := q.Update(in, now); err != nil {
		return nil, err
	}
	return q, nil
}

func ReconstituteCustomQuestion(id, text string, qt QuestionType, options []string, isRequired bool, displayOrder int, createdAt, updatedAt time.Time) *CustomQuestion {
	return &CustomQuestion{
		ID:           id,
		QuestionText: text,
		QuestionType: qt,
		Options:      options,
		IsRequired:   isRequired,
		DisplayOrder: displayOrder,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Update replaces the editable fields. The question type is fixed once
// created.
func (q *CustomQuestion) Update(in CustomQuestionInput, now time.Time) error {
	if isBlank(in.QuestionText) {
		return Invalid("Question text is required")
	}
	if runeLen(in.QuestionText) > 500 {
		return Invalid("Question text must be 500 characters or less")
	}
	if in.DisplayOrder < 0 {
		return Invalid("Display order must be a positive number")
	}

	options := make([]string, 0, len(in.Options))
	for _, o := range in.Options {
		if o = CleanText(o); o != "" {
			options = append(options, o)
		}
	}
	switch q.QuestionType {
	case QuestionSingleChoice:
		if len(options) < 2 {
			return Invalid("Single choice questions must have at least 2 options")
		}
	case QuestionMultipleChoice:
		if len(options) < 2 {
			return Invalid("Multiple choice questions must have at least 2 options")
		}
	case QuestionText:
		options = nil
	}

	q.QuestionText = CleanText(in.QuestionText)
	q.Options = options
	q.IsRequired = in.IsRequired
	q.DisplayOrder = in.DisplayOrder
	q.UpdatedAt = now
	return nil
}

// QuestionResponse is the answer to one custom question within an RSVP.
type QuestionResponse struct {
	ID           string
	RSVPID       string
	QuestionID   string
	ResponseText string
	CreatedAt    time.Time
}

type QuestionResponseInput struct {
	QuestionID   string
	ResponseText string
}

// IsEmpty reports whether the answer has no content and should be dropped.
func (in QuestionResponseInput) IsEmpty() bool { return isBlank(in.ResponseText) }

func NewQuestionResponse(rsvpID string, in QuestionResponseInput, now time.Time) (*QuestionResponse, error) {
	if isBlank(in.QuestionID) {
		return nil, Invalid("Question ID is required")
	}
	if in.IsEmpty() {
		return nil, Invalid("Response text is required")
	}
	return &QuestionResponse{
		ID:           idx.NewString(),
		RSVPID:       rsvpID,
		QuestionID:   in.QuestionID,
		ResponseText: in.ResponseText,
		CreatedAt:    now,
	}, nil
}

func ReconstituteQuestionResponse(id, rsvpID, questionID, text string, createdAt time.Time) QuestionResponse {
	return QuestionResponse{
		ID:           id,
		RSVPID:       rsvpID,
		QuestionID:   questionID,
		ResponseText: text,
		CreatedAt:    createdAt,
	}
}
