// Package router sets up the HTTP routes and middleware chain for the
// TriviaHub API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"triviahub/internal/handlers"
	"triviahub/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(limiter.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Health check.
	r.Get("/health", healthHandler)

	r.Get("/categories", api.ListCategories)
	r.Get("/categories/{id:[0-9]+}/questions", api.QuestionsByCategory)

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", api.ListQuestions)
		r.Post("/", api.CreateQuestion)
		r.Delete("/{id:[0-9]+}", api.DeleteQuestion)
		r.Post("/search", api.SearchQuestions)
	})

	r.Post("/quizzes", api.PlayQuiz)

	// Unrouted paths get the same JSON envelope as handler errors.
	r.NotFound(handlers.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
