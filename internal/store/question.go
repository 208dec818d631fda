// Package store implements data access for trivia questions and categories
// over a PostgreSQL connection pool. Stores hold no state beyond the *sql.DB
// handle and are safe for concurrent use.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"triviahub/internal/models"
)

// ErrNotFound is returned by write operations that target a row that does
// not exist.
var ErrNotFound = errors.New("not found")

// QuestionStore handles all question-related database operations.
type QuestionStore struct {
	db *sql.DB
}

// NewQuestionStore creates a new QuestionStore with the given database connection.
func NewQuestionStore(db *sql.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

const questionColumns = `id, question, answer, category, difficulty`

// scanQuestion scans a row into a Question struct.
func scanQuestion(scanner interface{ Scan(...any) error }) (*models.Question, error) {
	var q models.Question
	err := scanner.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// collectQuestions drains a result set into a slice, wrapping scan errors
// with the given operation name.
func collectQuestions(rows *sql.Rows, op string) ([]models.Question, error) {
	defer rows.Close()

	var items []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan question: %w", op, err)
		}
		items = append(items, *q)
	}
	return items, rows.Err()
}

// All returns every question ordered by id ascending. Pagination is a view
// concern and happens in the handlers, not here.
func (s *QuestionStore) All() ([]models.Question, error) {
	rows, err := s.db.Query(`SELECT ` + questionColumns + ` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return collectQuestions(rows, "list questions")
}

// Count returns the total number of questions.
func (s *QuestionStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

// Search returns all questions whose text contains term, matched
// case-insensitively, ordered by id. An empty term matches everything.
// SQL LIKE wildcards inside term keep their wildcard meaning.
func (s *QuestionStore) Search(term string) ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT `+questionColumns+`
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return collectQuestions(rows, "search questions")
}

// ByCategory returns all questions filed under the given category id,
// ordered by id.
func (s *QuestionStore) ByCategory(category int) ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT `+questionColumns+`
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, category)
	if err != nil {
		return nil, fmt.Errorf("questions by category: %w", err)
	}
	return collectQuestions(rows, "questions by category")
}

// Create inserts a new question and returns it with the generated id.
func (s *QuestionStore) Create(q *models.Question) (*models.Question, error) {
	row := s.db.QueryRow(`
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING `+questionColumns,
		q.Question, q.Answer, q.Category, q.Difficulty,
	)
	result, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return result, nil
}

// Delete removes a question by id. Deleting a question that does not exist
// returns ErrNotFound.
func (s *QuestionStore) Delete(id int) error {
	res, err := s.db.Exec(`DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete question %d: %w", id, ErrNotFound)
	}
	return nil
}
