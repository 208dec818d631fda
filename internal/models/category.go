package models

// Category is a trivia category label. Categories are seeded out of band and
// read-only through the API; responses represent them as an id→type mapping
// rather than as standalone objects.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
