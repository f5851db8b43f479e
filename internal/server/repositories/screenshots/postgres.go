// Package screenshots provides the PostgreSQL-backed repository for
// screenshot metadata. Rows are append-only.
package screenshots

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/workfolio/internal/dbx"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
)

// PostgresRepository implements screenshot storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a screenshot row and returns it with the generated id.
func (r *PostgresRepository) Create(ctx context.Context, screenshot *models.Screenshot) (*models.Screenshot, error) {
	query := `
		INSERT INTO screenshots (session_id, storage_key, url, captured_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		screenshot.SessionID, screenshot.StorageKey, screenshot.URL, screenshot.CapturedAt).Scan(&screenshot.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return screenshot, nil
}

// ListBySession returns a session's screenshots ordered by capture instant.
func (r *PostgresRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.Screenshot, error) {
	query := `
		SELECT id, session_id, storage_key, url, captured_at
		FROM screenshots
		WHERE session_id = $1
		ORDER BY captured_at
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to select screenshots: %w", err)
	}
	defer rows.Close()

	var result []*models.Screenshot
	for rows.Next() {
		s := &models.Screenshot{}
		if err := rows.Scan(&s.ID, &s.SessionID, &s.StorageKey, &s.URL, &s.CapturedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
