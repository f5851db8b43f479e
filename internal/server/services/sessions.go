package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/sessions"
)

// SessionService implements the work session lifecycle. All transitions are
// validated against the persisted state, so a stale client cannot double
// clock-in or end a break that was never started.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager) *SessionService {
	return &SessionService{db: db, repomanager: m, now: time.Now}
}

// ClockIn opens a new session for the user. If an open session already
// exists, ErrAlreadyClockedIn is returned and no row is written.
func (s *SessionService) ClockIn(ctx context.Context, userID string) (*models.Session, error) {
	repo := s.repomanager.Sessions(s.db)
	if _, err := repo.GetOpenByUser(ctx, userID); err == nil {
		return nil, common.ErrAlreadyClockedIn
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking open session: %w", err)
	}
	session, err := repo.Create(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return session, nil
}

// StartBreak marks the open session as on break. Requires an open session
// that is not already on break.
func (s *SessionService) StartBreak(ctx context.Context, userID string) (time.Time, error) {
	repo := s.repomanager.Sessions(s.db)
	session, err := s.openSession(ctx, repo, userID)
	if err != nil {
		return time.Time{}, err
	}
	if session.OnBreak() {
		return time.Time{}, common.ErrAlreadyOnBreak
	}
	at := s.now()
	if err := repo.SetBreakStart(ctx, session.ID, at); err != nil {
		return time.Time{}, fmt.Errorf("error starting break: %w", err)
	}
	return at, nil
}

// EndBreak folds the elapsed break interval into the session's accumulated
// break time and returns the new total. Requires an open session that is
// currently on break.
func (s *SessionService) EndBreak(ctx context.Context, userID string) (int64, error) {
	repo := s.repomanager.Sessions(s.db)
	session, err := s.openSession(ctx, repo, userID)
	if err != nil {
		return 0, err
	}
	if !session.OnBreak() {
		return 0, common.ErrNotOnBreak
	}
	elapsed := int64(s.now().Sub(session.BreakStartTime.Time).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	if err := repo.FoldBreak(ctx, session.ID, elapsed); err != nil {
		return 0, fmt.Errorf("error ending break: %w", err)
	}
	return session.BreakSeconds + elapsed, nil
}

// ClockOut closes the open session. An open break is folded first so the
// final break total is complete. The returned session carries the clock-out
// time, break seconds and the frozen total duration. Break time is reported
// alongside the total, not subtracted from it.
func (s *SessionService) ClockOut(ctx context.Context, userID string) (*models.Session, error) {
	repo := s.repomanager.Sessions(s.db)
	session, err := s.openSession(ctx, repo, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	breakSeconds := session.BreakSeconds
	if session.OnBreak() {
		elapsed := int64(now.Sub(session.BreakStartTime.Time).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}
		if err := repo.FoldBreak(ctx, session.ID, elapsed); err != nil {
			return nil, fmt.Errorf("error folding open break: %w", err)
		}
		breakSeconds += elapsed
	}

	total := int64(now.Sub(session.ClockInTime).Seconds())
	if total < 0 {
		total = 0
	}
	if err := repo.Close(ctx, session.ID, now, total); err != nil {
		return nil, fmt.Errorf("error closing session: %w", err)
	}

	session.ClockOutTime = sql.NullTime{Time: now, Valid: true}
	session.BreakSeconds = breakSeconds
	session.BreakStartTime = sql.NullTime{}
	session.IsClockedIn = false
	session.TotalDurationSeconds = total
	return session, nil
}

// ListSessions returns the user's most recent sessions, newest first, each
// with its screenshots attached. A non-positive limit falls back to the
// default history size.
func (s *SessionService) ListSessions(ctx context.Context, userID string, limit int) ([]*models.Session, map[string][]*models.Screenshot, error) {
	if limit <= 0 {
		limit = common.DefaultSessionHistoryLimit
	}
	list, err := s.repomanager.Sessions(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing sessions: %w", err)
	}
	shots, err := s.attachScreenshots(ctx, list)
	if err != nil {
		return nil, nil, err
	}
	return list, shots, nil
}

// ListAllSessions is the admin view over every user's sessions, optionally
// narrowed to one calendar day and a user id prefix.
func (s *SessionService) ListAllSessions(ctx context.Context, filter sessions.ListAllFilter) ([]*models.Session, map[string][]*models.Screenshot, error) {
	list, err := s.repomanager.Sessions(s.db).ListAll(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing all sessions: %w", err)
	}
	shots, err := s.attachScreenshots(ctx, list)
	if err != nil {
		return nil, nil, err
	}
	return list, shots, nil
}

func (s *SessionService) openSession(ctx context.Context, repo sessions.Repository, userID string) (*models.Session, error) {
	session, err := repo.GetOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNoActiveSession
		}
		return nil, fmt.Errorf("error loading open session: %w", err)
	}
	return session, nil
}

func (s *SessionService) attachScreenshots(ctx context.Context, list []*models.Session) (map[string][]*models.Screenshot, error) {
	repo := s.repomanager.Screenshots(s.db)
	result := make(map[string][]*models.Screenshot, len(list))
	for _, session := range list {
		shots, err := repo.ListBySession(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("error listing screenshots: %w", err)
		}
		result[session.ID] = shots
	}
	return result, nil
}
