// api_test.go provides shared fakes and helpers for handler tests. The
// handlers only see the store interfaces, so these tests run entirely in
// memory against mock stores.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"triviahub/internal/models"
)

// mockQuestionStore implements QuestionStore backed by a slice. Setting err
// makes every method fail with it.
type mockQuestionStore struct {
	questions []models.Question
	err       error
}

func (m *mockQuestionStore) All() ([]models.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Question(nil), m.questions...), nil
}

func (m *mockQuestionStore) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.questions), nil
}

func (m *mockQuestionStore) Search(term string) ([]models.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matches []models.Question
	for _, q := range m.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (m *mockQuestionStore) ByCategory(category int) ([]models.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matches []models.Question
	for _, q := range m.questions {
		if q.Category == category {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (m *mockQuestionStore) Create(q *models.Question) (*models.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	created := *q
	created.ID = m.nextID()
	m.questions = append(m.questions, created)
	return &created, nil
}

func (m *mockQuestionStore) Delete(id int) error {
	if m.err != nil {
		return m.err
	}
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete question %d: not found", id)
}

func (m *mockQuestionStore) nextID() int {
	max := 0
	for _, q := range m.questions {
		if q.ID > max {
			max = q.ID
		}
	}
	return max + 1
}

// mockCategoryStore implements CategoryStore backed by a slice.
type mockCategoryStore struct {
	categories []models.Category
	err        error
}

func (m *mockCategoryStore) All() ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Category(nil), m.categories...), nil
}

func (m *mockCategoryStore) FindByID(id int) (*models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.categories {
		if c.ID == id {
			cat := c
			return &cat, nil
		}
	}
	return nil, nil
}

// newTestAPI wires an API over the given mocks with deterministic question
// selection: randIntN always picks index 0.
func newTestAPI(qs QuestionStore, cs CategoryStore) *API {
	api := NewAPI(qs, cs)
	api.randIntN = func(n int) int { return 0 }
	return api
}

// questionFixtures returns n questions with ids 1..n, cycling through
// categories 1..3.
func questionFixtures(n int) []models.Question {
	qs := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, models.Question{
			ID:         i,
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   (i-1)%3 + 1,
			Difficulty: (i-1)%5 + 1,
		})
	}
	return qs
}

func categoryFixtures() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
}

// postJSON builds a POST request carrying a JSON body.
func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
