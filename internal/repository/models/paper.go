package models

import (
	"database/sql"
	"time"
)

// Paper is the papers table row. The question document (sections, rules,
// weights) is stored as a JSON CLOB: documents are validated on import and
// the engine consumes them whole, so there is nothing to gain from exploding
// them into relational columns.
type Paper struct {
	ID        string       `db:"id"`
	Title     string       `db:"title"`
	Doc       string       `db:"doc"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

func (Paper) TableName() string {
	return "papers"
}

// Submission is the submissions table row. Sheet and Summary are JSON CLOBs.
type Submission struct {
	ID        string    `db:"id"`
	PaperID   string    `db:"paper_id"`
	SessionID string    `db:"session_id"`
	Score     float64   `db:"score"`
	Total     float64   `db:"total"`
	Sheet     string    `db:"sheet"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
