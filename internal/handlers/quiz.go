package handlers

import (
	"encoding/json"
	"net/http"

	"triviahub/internal/models"
)

// quizCategory scopes a quiz round. Id 0 means all categories.
type quizCategory struct {
	ID int `json:"id"`
}

// quizRequest asks for the next question of a round. Both keys are
// required; previous_questions may be empty but must be present.
type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}

// quizResponse carries the next question, or null once the round has
// exhausted every candidate.
type quizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// PlayQuiz draws a uniformly random question from the chosen category that
// has not been asked yet in this round. Running out of candidates is the
// normal end of a round, answered with a null question rather than an
// error.
func (api *API) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest(err))
		return
	}
	if err := api.validate.Struct(req); err != nil {
		writeError(w, r, badRequest(err))
		return
	}

	var (
		candidates []models.Question
		err        error
	)
	if req.QuizCategory.ID == 0 {
		candidates, err = api.questions.All()
	} else {
		candidates, err = api.questions.ByCategory(req.QuizCategory.ID)
	}
	if err != nil {
		writeError(w, r, notFound(err))
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{
		Success:  true,
		Question: api.pickQuestion(candidates, req.PreviousQuestions),
	})
}

// pickQuestion selects one candidate uniformly at random, excluding ids
// already asked. Returns nil when no candidate remains.
func (api *API) pickQuestion(candidates []models.Question, previous []int) *models.Question {
	asked := make(map[int]bool, len(previous))
	for _, id := range previous {
		asked[id] = true
	}

	var eligible []models.Question
	for _, q := range candidates {
		if !asked[q.ID] {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	q := eligible[api.randIntN(len(eligible))]
	return &q
}
