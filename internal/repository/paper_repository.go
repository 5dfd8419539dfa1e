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

// PaperDatabaseAdapter implements domain.PaperRepository using sqlx.DB
type PaperDatabaseAdapter struct {
	db *sqlx.DB
}

// NewPaperDatabaseAdapter creates a new instance of PaperDatabaseAdapter
func NewPaperDatabaseAdapter(db *sqlx.DB) domain.PaperRepository {
	return &PaperDatabaseAdapter{db: db}
}

// GetPaperByID implements domain.PaperRepository. A missing or soft-deleted
// paper returns (nil, nil).
func (a *PaperDatabaseAdapter) GetPaperByID(ctx context.Context, id string) (*domain.Paper, error) {
	var row models.Paper
	query := `SELECT
		id "id",
		title "title",
		doc "doc",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"
	FROM papers
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get paper by ID %s: %w", id, err)
	}
	return toDomainPaper(&row)
}

// SavePaper implements domain.PaperRepository. A paper without an ID gets a
// fresh ULID; an existing ID is updated in place.
func (a *PaperDatabaseAdapter) SavePaper(ctx context.Context, paper *domain.Paper) error {
	if paper == nil {
		return fmt.Errorf("cannot save nil paper")
	}
	now := time.Now()
	if paper.ID == "" {
		paper.ID = util.NewULID()
		paper.CreatedAt = now
	}
	paper.UpdatedAt = now

	doc, err := json.Marshal(paper)
	if err != nil {
		return fmt.Errorf("failed to marshal paper document: %w", err)
	}

	query := `MERGE INTO papers p
	USING (SELECT :1 id FROM dual) src
	ON (p.id = src.id)
	WHEN MATCHED THEN UPDATE SET
		p.title = :2, p.doc = :3, p.updated_at = :4
	WHEN NOT MATCHED THEN INSERT (id, title, doc, created_at, updated_at)
	VALUES (:5, :6, :7, :8, :9)`

	_, err = a.db.ExecContext(ctx, query,
		paper.ID,
		paper.Title, string(doc), paper.UpdatedAt,
		paper.ID, paper.Title, string(doc), paper.CreatedAt, paper.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save paper: %w", err)
	}
	return nil
}

// DeletePaper implements domain.PaperRepository as a soft delete.
func (a *PaperDatabaseAdapter) DeletePaper(ctx context.Context, id string) error {
	query := `UPDATE papers SET deleted_at = :1 WHERE id = :2 AND deleted_at IS NULL`
	_, err := a.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete paper %s: %w", id, err)
	}
	return nil
}

func toDomainPaper(row *models.Paper) (*domain.Paper, error) {
	var paper domain.Paper
	if err := json.Unmarshal([]byte(row.Doc), &paper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal paper document %s: %w", row.ID, err)
	}
	// Column values win over whatever the stored document carries.
	paper.ID = row.ID
	paper.Title = row.Title
	paper.CreatedAt = row.CreatedAt
	paper.UpdatedAt = row.UpdatedAt
	return &paper, nil
}
