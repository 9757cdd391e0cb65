package http

import (
	"net/http"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/rsvpsdk"
)

// CatalogHandler manages meal options and custom questions.
type CatalogHandler struct {
	CatalogService *service.CatalogService
}

// HandleListMealOptions godoc
//
//	@Summary		List Meal Options
//	@Description	All meal options ordered by course then name. Pass available=true to hide unavailable ones.
//	@Tags			Catalog
//	@Produce		json
//	@Param			available	query	bool	false	"Only available options"
//	@Success		200			{array}	rsvpsdk.MealOption
//	@Security		BearerAuth
//	@Router			/api/v1/admin/meal-options [get].
func (h *CatalogHandler) HandleListMealOptions(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"
	list, err := h.CatalogService.ListMealOptions(r.Context(), onlyAvailable)
	if err != nil {
		writeError(w, r, err, "list meal options")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMealOptions(list))
}

// HandleCreateMealOption godoc
//
//	@Summary		Create Meal Option
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.CreateMealOptionRequest	true	"Meal option"
//	@Success		201		{object}	rsvpsdk.MealOption
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/meal-options [post].
func (h *CatalogHandler) HandleCreateMealOption(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.CreateMealOptionRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.CatalogService.CreateMealOption(r.Context(), domain.MealOptionInput{
		CourseType:  domain.CourseType(req.CourseType),
		Name:        req.Name,
		Description: req.Description,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		writeError(w, r, err, "create meal option")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMealOption(m))
}

// HandleUpdateMealOption godoc
//
//	@Summary		Update Meal Option
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Meal option ID"
//	@Param			request	body		rsvpsdk.UpdateMealOptionRequest	true	"Changed fields"
//	@Success		200		{object}	rsvpsdk.MealOption
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/meal-options/{id} [put].
func (h *CatalogHandler) HandleUpdateMealOption(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.UpdateMealOptionRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.CatalogService.UpdateMealOption(r.Context(), r.PathValue("id"), service.MealOptionPatch{
		Name:        req.Name,
		Description: req.Description,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		writeError(w, r, err, "update meal option")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMealOption(m))
}

// HandleDeleteMealOption godoc
//
//	@Summary		Delete Meal Option
//	@Description	Options that guests have already picked cannot be deleted; mark them unavailable instead.
//	@Tags			Catalog
//	@Param			id	path	string	true	"Meal option ID"
//	@Success		204
//	@Failure		400	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/meal-options/{id} [delete].
func (h *CatalogHandler) HandleDeleteMealOption(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteMealOption(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete meal option")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListQuestions godoc
//
//	@Summary		List Custom Questions
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	rsvpsdk.Question
//	@Security		BearerAuth
//	@Router			/api/v1/admin/questions [get].
func (h *CatalogHandler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	list, err := h.CatalogService.ListQuestions(r.Context())
	if err != nil {
		writeError(w, r, err, "list questions")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toQuestions(list))
}

// HandleCreateQuestion godoc
//
//	@Summary		Create Custom Question
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpsdk.CreateQuestionRequest	true	"Question"
//	@Success		201		{object}	rsvpsdk.Question
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/questions [post].
func (h *CatalogHandler) HandleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.CreateQuestionRequest
	if !decode(w, r, &req) {
		return
	}

	q, err := h.CatalogService.CreateQuestion(r.Context(), domain.CustomQuestionInput{
		QuestionText: req.QuestionText,
		QuestionType: domain.QuestionType(req.QuestionType),
		Options:      req.Options,
		IsRequired:   req.IsRequired,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		writeError(w, r, err, "create question")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toQuestion(q))
}

// HandleUpdateQuestion godoc
//
//	@Summary		Update Custom Question
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Question ID"
//	@Param			request	body		rsvpsdk.UpdateQuestionRequest	true	"Changed fields"
//	@Success		200		{object}	rsvpsdk.Question
//	@Failure		400		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/questions/{id} [put].
func (h *CatalogHandler) HandleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req rsvpsdk.UpdateQuestionRequest
	if !decode(w, r, &req) {
		return
	}

	q, err := h.CatalogService.UpdateQuestion(r.Context(), r.PathValue("id"), service.QuestionPatch{
		QuestionText: req.QuestionText,
		Options:      req.Options,
		IsRequired:   req.IsRequired,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		writeError(w, r, err, "update question")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toQuestion(q))
}

// HandleDeleteQuestion godoc
//
//	@Summary		Delete Custom Question
//	@Tags			Catalog
//	@Param			id	path	string	true	"Question ID"
//	@Success		204
//	@Failure		404	{object}	rsvpsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/questions/{id} [delete].
func (h *CatalogHandler) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteQuestion(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete question")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
