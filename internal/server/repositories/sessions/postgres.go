// Package sessions provides the PostgreSQL-backed repository for
// work_sessions rows.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	"github.com/dmitrijs2005/workfolio/internal/dbx"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
)

// PostgresRepository implements session storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const sessionColumns = `id, user_id, clock_in_time, clock_out_time, break_seconds, break_start_time, is_clocked_in, total_duration_seconds`

func scanSession(row interface {
	Scan(dest ...any) error
}, s *models.Session) error {
	return row.Scan(
		&s.ID, &s.UserID, &s.ClockInTime, &s.ClockOutTime,
		&s.BreakSeconds, &s.BreakStartTime, &s.IsClockedIn, &s.TotalDurationSeconds,
	)
}

// Create inserts a new open session. The partial unique index on
// (user_id) WHERE clock_out_time IS NULL guarantees at most one open
// session per user even if two clock-ins race.
func (r *PostgresRepository) Create(ctx context.Context, userID string, clockIn time.Time) (*models.Session, error) {
	query := `
		INSERT INTO work_sessions (user_id, clock_in_time, break_seconds, is_clocked_in)
		VALUES ($1, $2, 0, TRUE)
		RETURNING id
	`
	s := &models.Session{
		UserID:      userID,
		ClockInTime: clockIn,
		IsClockedIn: true,
	}
	if err := r.db.QueryRowContext(ctx, query, userID, clockIn).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// GetByID returns the session with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = $1`

	s := &models.Session{}
	if err := scanSession(r.db.QueryRowContext(ctx, query, id), s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// GetOpenByUser returns the user's open session, or common.ErrorNotFound
// when the user is not clocked in.
func (r *PostgresRepository) GetOpenByUser(ctx context.Context, userID string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE user_id = $1 AND clock_out_time IS NULL`

	s := &models.Session{}
	if err := scanSession(r.db.QueryRowContext(ctx, query, userID), s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// SetBreakStart records the start of a break interval.
func (r *PostgresRepository) SetBreakStart(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE work_sessions SET break_start_time = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FoldBreak adds the elapsed break interval to the cumulative counter and
// clears the open break marker.
func (r *PostgresRepository) FoldBreak(ctx context.Context, id string, addSeconds int64) error {
	query := `
		UPDATE work_sessions
		SET break_seconds = break_seconds + $2, break_start_time = NULL
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, addSeconds); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Close finalizes a session at clock-out, freezing its total duration.
func (r *PostgresRepository) Close(ctx context.Context, id string, clockOut time.Time, totalDurationSeconds int64) error {
	query := `
		UPDATE work_sessions
		SET clock_out_time = $2, is_clocked_in = FALSE, total_duration_seconds = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, clockOut, totalDurationSeconds); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the user's sessions, most recent first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM work_sessions
		WHERE user_id = $1
		ORDER BY clock_in_time DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	var result []*models.Session
	for rows.Next() {
		s := &models.Session{}
		if err := scanSession(rows, s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAll returns sessions across all users for the admin dashboard, joined
// with employee names, newest first. Filters are applied only when set.
func (r *PostgresRepository) ListAll(ctx context.Context, filter ListAllFilter) ([]*models.Session, error) {
	query := `
		SELECT s.id, s.user_id, s.clock_in_time, s.clock_out_time, s.break_seconds,
		       s.break_start_time, s.is_clocked_in, s.total_duration_seconds,
		       u.first_name || ' ' || u.last_name
		FROM work_sessions s
		JOIN users u ON u.id = s.user_id
		WHERE ($1::timestamptz IS NULL OR s.clock_in_time >= $1)
		  AND ($2::timestamptz IS NULL OR s.clock_in_time < $2)
		  AND ($3::text = '' OR s.user_id::text LIKE $3 || '%')
		ORDER BY s.clock_in_time DESC
	`
	var dayStart, dayEnd sql.NullTime
	if !filter.DayStart.IsZero() {
		dayStart = sql.NullTime{Time: filter.DayStart, Valid: true}
	}
	if !filter.DayEnd.IsZero() {
		dayEnd = sql.NullTime{Time: filter.DayEnd, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, query, dayStart, dayEnd, filter.UserIDPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	var result []*models.Session
	for rows.Next() {
		s := &models.Session{}
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ClockInTime, &s.ClockOutTime, &s.BreakSeconds,
			&s.BreakStartTime, &s.IsClockedIn, &s.TotalDurationSeconds, &s.UserName,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
