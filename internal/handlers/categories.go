package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"triviahub/internal/models"
)

// categoriesResponse maps category ids to their type labels.
type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// categoryQuestionsResponse lists one category's questions.
type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// ListCategories returns all categories as an id to type mapping. A
// database holding no categories at all is a not-found condition.
func (api *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := api.categories.All()
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}
	if len(categories) == 0 {
		writeError(w, r, notFound(nil))
		return
	}

	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: byID})
}

// QuestionsByCategory returns one page of the questions filed under a
// category. The category must exist, but a category with zero questions is
// a normal empty page, not an error. total_questions counts the category's
// questions, not the whole table.
func (api *API) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}

	category, err := api.categories.FindByID(id)
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}
	if category == nil {
		writeError(w, r, notFound(nil))
		return
	}

	questions, err := api.questions.ByCategory(id)
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}

	writeJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       paginate(questions, pageFromRequest(r)),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
