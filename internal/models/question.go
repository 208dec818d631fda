// Package models defines the data structures shared between the store and
// the HTTP handlers. Field names and json tags are part of the public API
// contract and must not change shape.
package models

// Question is a single trivia question. The category field holds a Category
// id but is not enforced as a foreign key: the game accepts questions filed
// under categories that do not (yet) exist.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
