package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"quizgrade/internal/domain"
	"quizgrade/internal/repository/models"
	"quizgrade/internal/util"

	"github.com/jmoiron/sqlx"
)

// SubmissionDatabaseAdapter implements domain.SubmissionRepository using sqlx.DB
type SubmissionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewSubmissionDatabaseAdapter creates a new instance of SubmissionDatabaseAdapter
func NewSubmissionDatabaseAdapter(db *sqlx.DB) domain.SubmissionRepository {
	return &SubmissionDatabaseAdapter{db: db}
}

// SaveSubmission implements domain.SubmissionRepository
func (a *SubmissionDatabaseAdapter) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	if sub == nil {
		return fmt.Errorf("cannot save nil submission")
	}
	if sub.ID == "" {
		sub.ID = util.NewULID()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	sheet, err := json.Marshal(sub.Sheet)
	if err != nil {
		return fmt.Errorf("failed to marshal answer sheet: %w", err)
	}
	summary, err := json.Marshal(sub.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	query := `INSERT INTO submissions (
		id, paper_id, session_id, score, total, sheet, summary, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8
	)`

	_, err = a.db.ExecContext(ctx, query,
		sub.ID,
		sub.PaperID,
		sub.SessionID,
		sub.Summary.Score,
		sub.Summary.Total,
		string(sheet),
		string(summary),
		sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// GetSubmissionByID implements domain.SubmissionRepository. A missing
// submission returns (nil, nil).
func (a *SubmissionDatabaseAdapter) GetSubmissionByID(ctx context.Context, id string) (*domain.Submission, error) {
	var row models.Submission
	query := `SELECT
		id "id",
		paper_id "paper_id",
		session_id "session_id",
		score "score",
		total "total",
		sheet "sheet",
		summary "summary",
		created_at "created_at"
	FROM submissions
	WHERE id = :1`

	err := a.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission by ID %s: %w", id, err)
	}

	sub := &domain.Submission{
		ID:        row.ID,
		PaperID:   row.PaperID,
		SessionID: row.SessionID,
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal([]byte(row.Sheet), &sub.Sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answer sheet for %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.Summary), &sub.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary for %s: %w", id, err)
	}
	return sub, nil
}
