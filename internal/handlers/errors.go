package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
)

// errorResponse is the uniform envelope returned for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// apiError pairs one of the three client-facing failure kinds with its
// internal cause. The status and message shown to clients are fixed per
// kind; the cause stays inspectable through errors.Is and errors.As and is
// what ends up in the logs.
type apiError struct {
	status  int
	message string
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.cause }

// badRequest marks a request whose body could not be understood at all.
func badRequest(cause error) *apiError {
	return &apiError{status: http.StatusBadRequest, message: "bad request", cause: cause}
}

// unprocessable marks a well-formed request whose operation could not be
// completed. Write handlers report every failure this way, including
// deleting a question that does not exist.
func unprocessable(cause error) *apiError {
	return &apiError{status: http.StatusUnprocessableEntity, message: "unprocessable", cause: cause}
}

// notFound marks an empty result or any failure inside a read handler. A
// nil cause means the expected empty-result case rather than a fault.
func notFound(cause error) *apiError {
	return &apiError{status: http.StatusNotFound, message: "resource not found", cause: cause}
}

// writeError renders the envelope for e and logs the cause when one exists.
func writeError(w http.ResponseWriter, r *http.Request, e *apiError) {
	if e.cause != nil {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", e.status,
			"error", e.cause,
		)
	}
	writeJSON(w, e.status, errorResponse{Success: false, Error: e.status, Message: e.message})
}
