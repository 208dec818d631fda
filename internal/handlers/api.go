// Package handlers contains the HTTP handlers for the TriviaHub API.
// Handlers are methods on the API group and receive their dependencies
// through the constructor. Every response, success or failure, carries the
// {"success": ...} JSON envelope.
package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/go-playground/validator/v10"

	"triviahub/internal/models"
)

// QuestionStore is the question data access surface the handlers depend on.
// *store.QuestionStore satisfies it; tests substitute in-memory fakes.
type QuestionStore interface {
	All() ([]models.Question, error)
	Count() (int, error)
	Search(term string) ([]models.Question, error)
	ByCategory(category int) ([]models.Question, error)
	Create(q *models.Question) (*models.Question, error)
	Delete(id int) error
}

// CategoryStore is the category data access surface the handlers depend on.
type CategoryStore interface {
	All() ([]models.Category, error)
	FindByID(id int) (*models.Category, error)
}

// API groups the trivia HTTP handlers and their dependencies.
type API struct {
	questions  QuestionStore
	categories CategoryStore
	validate   *validator.Validate

	// randIntN returns a uniform value in [0, n). Swapped in tests to make
	// quiz selection deterministic.
	randIntN func(n int) int
}

// NewAPI creates the API handler group backed by the given stores.
func NewAPI(questions QuestionStore, categories CategoryStore) *API {
	return &API{
		questions:  questions,
		categories: categories,
		validate:   validator.New(),
		randIntN:   rand.Intn,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// NotFound answers unrouted paths with the standard not-found envelope, so
// clients can rely on the envelope shape for every response under the API
// surface. Wired as the router's NotFound handler.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, notFound(nil))
}
