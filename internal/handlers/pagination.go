package handlers

import (
	"net/http"
	"strconv"

	"triviahub/internal/models"
)

// questionsPerPage is the fixed page size for every question list endpoint.
const questionsPerPage = 10

// pageFromRequest reads the "page" query parameter. Missing, malformed, or
// non-positive values fall back to page 1.
func pageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// paginate returns the 1-indexed page window over questions. Pages past the
// end come back empty rather than failing; callers decide whether an empty
// page is an error. The result is never nil so it serializes as [] and not
// null.
func paginate(questions []models.Question, page int) []models.Question {
	if len(questions) == 0 || page < 1 {
		return []models.Question{}
	}

	// The page the final question lands on. Bounding against it before
	// computing start keeps huge page numbers from wrapping the
	// multiplication into a small in-range offset.
	lastPage := 1 + (len(questions)-1)/questionsPerPage
	if page > lastPage {
		return []models.Question{}
	}

	start := (page - 1) * questionsPerPage
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
