package rsvpsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Meal options
// ============================================================================

// ListMealOptions returns meal options, only the available ones when
// onlyAvailable is set.
func (s *Session) ListMealOptions(ctx context.Context, onlyAvailable bool) ([]MealOption, error) {
	path := "/api/v1/admin/meal-options"
	if onlyAvailable {
		path += "?available=true"
	}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out []MealOption
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateMealOption(ctx context.Context, req CreateMealOptionRequest) (*MealOption, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/meal-options", req)
	if err != nil {
		return nil, err
	}

	var out MealOption
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateMealOption(ctx context.Context, id string, req UpdateMealOptionRequest) (*MealOption, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/v1/admin/meal-options/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out MealOption
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteMealOption(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/admin/meal-options/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Questions
// ============================================================================

// ListQuestions returns the custom questions in display order.
func (s *Session) ListQuestions(ctx context.Context) ([]Question, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/v1/admin/questions", nil)
	if err != nil {
		return nil, err
	}

	var out []Question
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*Question, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/v1/admin/questions", req)
	if err != nil {
		return nil, err
	}

	var out Question
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateQuestion(ctx context.Context, id string, req UpdateQuestionRequest) (*Question, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/v1/admin/questions/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out Question
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteQuestion(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/v1/admin/questions/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
