package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"triviahub/internal/models"
)

// questionListResponse is the shape shared by the list and search endpoints.
type questionListResponse struct {
	Success        bool              `json:"success"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// questionCreatedResponse acknowledges a create with the refreshed first page.
type questionCreatedResponse struct {
	Success        bool              `json:"success"`
	Created        int               `json:"created"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// questionDeletedResponse acknowledges a delete with the refreshed first page.
type questionDeletedResponse struct {
	Success        bool              `json:"success"`
	Deleted        int               `json:"deleted"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// createQuestionRequest requires all four keys to be present in the body.
// Pointer fields make presence checkable: an absent or null key leaves its
// field nil and fails the required rule, while present zero values pass.
type createQuestionRequest struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required"`
}

// searchRequest carries the substring to match question text against. An
// absent or empty term matches every question.
type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ListQuestions returns one page of questions ordered by id.
// total_questions counts the whole table, not the page. Requesting a page
// past the end of the data is a not-found condition.
func (api *API) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := api.questions.All()
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}

	page := paginate(questions, pageFromRequest(r))
	if len(page) == 0 {
		writeError(w, r, notFound(nil))
		return
	}

	writeJSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      page,
		TotalQuestions: len(questions),
	})
}

// CreateQuestion inserts a new question and answers with its id alongside
// the refreshed first page of questions.
func (api *API) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest(err))
		return
	}
	if err := api.validate.Struct(req); err != nil {
		writeError(w, r, unprocessable(err))
		return
	}

	created, err := api.questions.Create(&models.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		writeError(w, r, unprocessable(err))
		return
	}

	questions, err := api.questions.All()
	if err != nil {
		writeError(w, r, unprocessable(err))
		return
	}

	writeJSON(w, http.StatusOK, questionCreatedResponse{
		Success:        true,
		Created:        created.ID,
		Questions:      paginate(questions, 1),
		TotalQuestions: len(questions),
	})
}

// DeleteQuestion removes a question by id and answers with the deleted id
// alongside the refreshed first page. Deleting an id that does not exist is
// an unprocessable request like any other delete failure.
func (api *API) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, unprocessable(err))
		return
	}

	if err := api.questions.Delete(id); err != nil {
		writeError(w, r, unprocessable(err))
		return
	}

	questions, err := api.questions.All()
	if err != nil {
		writeError(w, r, unprocessable(err))
		return
	}

	writeJSON(w, http.StatusOK, questionDeletedResponse{
		Success:        true,
		Deleted:        id,
		Questions:      paginate(questions, 1),
		TotalQuestions: len(questions),
	})
}

// SearchQuestions returns the questions whose text contains the posted
// term, matched case-insensitively. Zero matches is a not-found condition.
// total_questions reports the size of the whole question set rather than
// the match count; the game client feeds it to its overall counter.
func (api *API) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest(err))
		return
	}

	matches, err := api.questions.Search(req.SearchTerm)
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}
	if len(matches) == 0 {
		writeError(w, r, notFound(nil))
		return
	}

	total, err := api.questions.Count()
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}

	writeJSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      paginate(matches, pageFromRequest(r)),
		TotalQuestions: total,
	})
}
