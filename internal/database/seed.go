package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// seedCategories are inserted in this exact order so a fresh database gets
// ids 1 through 6: the question seed rows below reference categories by
// those ids, and quiz play reserves id 0 as the all-categories sentinel.
var seedCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// seedQuestions is a starter set spanning every category and most
// difficulty levels, enough to exercise pagination and quiz play locally.
var seedQuestions = []struct {
	question   string
	answer     string
	category   int
	difficulty int
}{
	{"Which is the largest organ in the human body?", "The Liver", 1, 4},
	{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
	{"Which Dutch graphic artist, initials M.C., was a creator of optical illusions?", "Escher", 2, 1},
	{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{"Who invented peanut butter?", "George Washington Carver", 4, 2},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4, 4},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 5, 3},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
}

// Seed populates the database with initial development data: the six
// standard trivia categories and a starter question set. Both steps are
// no-ops when their table already holds rows, so Seed is safe to run on
// every startup.
func Seed(db *sql.DB) error {
	seeded := false

	var categoryCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categoryCount); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if categoryCount == 0 {
		for _, t := range seedCategories {
			if _, err := db.Exec(`INSERT INTO categories (type) VALUES ($1)`, t); err != nil {
				return fmt.Errorf("seed insert category %q: %w", t, err)
			}
		}
		seeded = true
	}

	var questionCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&questionCount); err != nil {
		return fmt.Errorf("seed check questions: %w", err)
	}
	if questionCount == 0 {
		for _, q := range seedQuestions {
			_, err := db.Exec(`
				INSERT INTO questions (question, answer, category, difficulty)
				VALUES ($1, $2, $3, $4)
			`, q.question, q.answer, q.category, q.difficulty)
			if err != nil {
				return fmt.Errorf("seed insert question: %w", err)
			}
		}
		seeded = true
	}

	if !seeded {
		slog.Info("database already seeded, skipping")
		return nil
	}

	slog.Info("database seeded",
		"categories", len(seedCategories),
		"questions", len(seedQuestions),
	)
	return nil
}
