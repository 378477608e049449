package models

import (
	"database/sql"
	"time"
)

// QuizResult is one row of quiz_results. Supplementary holds the JSON-encoded
// supplementary scores and is NULL for short quizzes.
type QuizResult struct {
	ID            string         `db:"id"`
	SessionID     string         `db:"session_id"`
	QuizType      string         `db:"quiz_type"`
	MacroCell     string         `db:"macro_cell"`
	Ideology      string         `db:"ideology"`
	Economic      float64        `db:"economic"`
	Authority     float64        `db:"authority"`
	Cultural      float64        `db:"cultural"`
	Supplementary sql.NullString `db:"supplementary"`
	CompletedAt   time.Time      `db:"completed_at"`
}

// IdeologyCount is one row of the per-ideology aggregate.
type IdeologyCount struct {
	Ideology string `db:"ideology"`
	Total    int    `db:"total"`
}
