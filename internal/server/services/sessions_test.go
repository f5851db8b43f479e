package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	sessionsrepo "github.com/dmitrijs2005/workfolio/internal/server/repositories/sessions"
)

func newSessionService(t *testing.T, rm *fakeRepoManager, now time.Time) (*SessionService, *sql.DB) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	s := NewSessionService(db, rm)
	s.now = func() time.Time { return now }
	return s, db
}

func TestClockIn_OpensSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rm := &fakeRepoManager{s: &fakeSessionsRepo{
		openErr:   common.ErrorNotFound,
		createOut: &models.Session{ID: "s1", UserID: "u1", ClockInTime: now, IsClockedIn: true},
	}}
	s, db := newSessionService(t, rm, now)
	defer db.Close()

	session, err := s.ClockIn(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ClockIn error: %v", err)
	}
	if session.ID != "s1" || !session.ClockInTime.Equal(now) {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestClockIn_AlreadyClockedIn(t *testing.T) {
	now := time.Now()
	rm := &fakeRepoManager{s: &fakeSessionsRepo{
		openOut: &models.Session{ID: "s1", UserID: "u1"},
	}}
	s, db := newSessionService(t, rm, now)
	defer db.Close()

	if _, err := s.ClockIn(context.Background(), "u1"); !errors.Is(err, common.ErrAlreadyClockedIn) {
		t.Fatalf("want ErrAlreadyClockedIn, got %v", err)
	}
}

func TestStartBreak_Flows(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	// no open session
	rmNoSession := &fakeRepoManager{s: &fakeSessionsRepo{openErr: common.ErrorNotFound}}
	s, db := newSessionService(t, rmNoSession, now)
	if _, err := s.StartBreak(context.Background(), "u1"); !errors.Is(err, common.ErrNoActiveSession) {
		t.Fatalf("want ErrNoActiveSession, got %v", err)
	}
	db.Close()

	// already on break
	rmOnBreak := &fakeRepoManager{s: &fakeSessionsRepo{
		openOut: &models.Session{ID: "s1", BreakStartTime: sql.NullTime{Time: now.Add(-time.Minute), Valid: true}},
	}}
	s, db = newSessionService(t, rmOnBreak, now)
	if _, err := s.StartBreak(context.Background(), "u1"); !errors.Is(err, common.ErrAlreadyOnBreak) {
		t.Fatalf("want ErrAlreadyOnBreak, got %v", err)
	}
	db.Close()

	// success
	repo := &fakeSessionsRepo{openOut: &models.Session{ID: "s1"}}
	s, db = newSessionService(t, &fakeRepoManager{s: repo}, now)
	defer db.Close()
	at, err := s.StartBreak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("StartBreak error: %v", err)
	}
	if !at.Equal(now) || !repo.setBreakAt.Equal(now) {
		t.Fatalf("break start time: got %v, repo saw %v", at, repo.setBreakAt)
	}
}

func TestEndBreak_FoldsElapsedSeconds(t *testing.T) {
	breakStart := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	now := breakStart.Add(5*time.Minute + 700*time.Millisecond)

	repo := &fakeSessionsRepo{openOut: &models.Session{
		ID:             "s1",
		BreakSeconds:   60,
		BreakStartTime: sql.NullTime{Time: breakStart, Valid: true},
	}}
	s, db := newSessionService(t, &fakeRepoManager{s: repo}, now)
	defer db.Close()

	total, err := s.EndBreak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("EndBreak error: %v", err)
	}
	// elapsed truncates to whole seconds: 300, plus the accumulated 60
	if total != 360 {
		t.Fatalf("total break seconds: want 360, got %d", total)
	}
	if repo.foldedAdd != 300 {
		t.Fatalf("folded seconds: want 300, got %d", repo.foldedAdd)
	}
}

func TestEndBreak_NotOnBreak(t *testing.T) {
	now := time.Now()
	rm := &fakeRepoManager{s: &fakeSessionsRepo{openOut: &models.Session{ID: "s1"}}}
	s, db := newSessionService(t, rm, now)
	defer db.Close()

	if _, err := s.EndBreak(context.Background(), "u1"); !errors.Is(err, common.ErrNotOnBreak) {
		t.Fatalf("want ErrNotOnBreak, got %v", err)
	}
}

func TestClockOut_FreezesWallClockTotal(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := clockIn.Add(8 * time.Hour)

	repo := &fakeSessionsRepo{openOut: &models.Session{
		ID:           "s1",
		UserID:       "u1",
		ClockInTime:  clockIn,
		BreakSeconds: 1800,
		IsClockedIn:  true,
	}}
	s, db := newSessionService(t, &fakeRepoManager{s: repo}, now)
	defer db.Close()

	session, err := s.ClockOut(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ClockOut error: %v", err)
	}
	// break time is reported alongside the total, not subtracted from it
	want := int64(8 * 3600)
	if session.TotalDurationSeconds != want || repo.closedTotal != want {
		t.Fatalf("total duration: want %d, got %d (repo %d)", want, session.TotalDurationSeconds, repo.closedTotal)
	}
	if session.BreakSeconds != 1800 {
		t.Fatalf("break seconds: want 1800, got %d", session.BreakSeconds)
	}
	if !session.ClockOutTime.Valid || !session.ClockOutTime.Time.Equal(now) {
		t.Fatalf("clock out time not set: %+v", session.ClockOutTime)
	}
	if session.IsClockedIn {
		t.Fatalf("session still marked clocked in")
	}
}

func TestClockOut_FoldsOpenBreak(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	breakStart := clockIn.Add(4 * time.Hour)
	now := breakStart.Add(10 * time.Minute)

	repo := &fakeSessionsRepo{openOut: &models.Session{
		ID:             "s1",
		UserID:         "u1",
		ClockInTime:    clockIn,
		BreakSeconds:   0,
		BreakStartTime: sql.NullTime{Time: breakStart, Valid: true},
	}}
	s, db := newSessionService(t, &fakeRepoManager{s: repo}, now)
	defer db.Close()

	session, err := s.ClockOut(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ClockOut error: %v", err)
	}
	if repo.foldedAdd != 600 {
		t.Fatalf("open break not folded: %d", repo.foldedAdd)
	}
	if session.BreakSeconds != 600 {
		t.Fatalf("break seconds: want 600, got %d", session.BreakSeconds)
	}
	want := int64(4*3600 + 600)
	if session.TotalDurationSeconds != want {
		t.Fatalf("total duration: want %d, got %d", want, session.TotalDurationSeconds)
	}
	if session.OnBreak() {
		t.Fatalf("closed session still on break")
	}
}

// Full lifecycle: clock-in at T0, break from T0+300 to T0+600, clock-out at
// T0+900. The closed session must report 300 break seconds and a frozen total
// of 900 seconds.
func TestSessionLifecycle_BreakAndTotalAccounting(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	open := &models.Session{ID: "s1", UserID: "u1", ClockInTime: t0, IsClockedIn: true}
	repo := &fakeSessionsRepo{openOut: open}
	s, db := newSessionService(t, &fakeRepoManager{s: repo}, t0)
	defer db.Close()

	s.now = func() time.Time { return t0.Add(300 * time.Second) }
	at, err := s.StartBreak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("StartBreak error: %v", err)
	}
	open.BreakStartTime = sql.NullTime{Time: at, Valid: true}

	s.now = func() time.Time { return t0.Add(600 * time.Second) }
	breakTotal, err := s.EndBreak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("EndBreak error: %v", err)
	}
	if breakTotal != 300 {
		t.Fatalf("break seconds: want 300, got %d", breakTotal)
	}
	open.BreakSeconds = 300
	open.BreakStartTime = sql.NullTime{}

	s.now = func() time.Time { return t0.Add(900 * time.Second) }
	session, err := s.ClockOut(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ClockOut error: %v", err)
	}
	if session.BreakSeconds != 300 {
		t.Fatalf("break seconds: want 300, got %d", session.BreakSeconds)
	}
	if session.TotalDurationSeconds != 900 || repo.closedTotal != 900 {
		t.Fatalf("total duration: want 900, got %d (repo %d)", session.TotalDurationSeconds, repo.closedTotal)
	}
	if !session.ClockOutTime.Valid || session.IsClockedIn {
		t.Fatalf("session not closed: %+v", session)
	}
}

func TestClockOut_NoActiveSession(t *testing.T) {
	rm := &fakeRepoManager{s: &fakeSessionsRepo{openErr: common.ErrorNotFound}}
	s, db := newSessionService(t, rm, time.Now())
	defer db.Close()

	if _, err := s.ClockOut(context.Background(), "u1"); !errors.Is(err, common.ErrNoActiveSession) {
		t.Fatalf("want ErrNoActiveSession, got %v", err)
	}
}

func TestListSessions_DefaultLimitAndScreenshots(t *testing.T) {
	repo := &fakeSessionsRepo{listOut: []*models.Session{{ID: "s1"}, {ID: "s2"}}}
	shots := &fakeScreenshotsRepo{listOut: []*models.Screenshot{{ID: "sc1", SessionID: "s1"}}}
	rm := &fakeRepoManager{s: repo, sc: shots}
	s, db := newSessionService(t, rm, time.Now())
	defer db.Close()

	list, bySession, err := s.ListSessions(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("ListSessions error: %v", err)
	}
	if repo.gotLimit != common.DefaultSessionHistoryLimit {
		t.Fatalf("limit: want default %d, got %d", common.DefaultSessionHistoryLimit, repo.gotLimit)
	}
	if len(list) != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if got := bySession["s1"]; len(got) != 1 || got[0].ID != "sc1" {
		t.Fatalf("screenshots not attached: %+v", bySession)
	}
	if got := bySession["s2"]; len(got) != 1 {
		t.Fatalf("screenshots for s2: %+v", got)
	}
}

func TestListAllSessions_PassesFilter(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeSessionsRepo{listAllOut: []*models.Session{{ID: "s1", UserName: "Alice Smith"}}}
	rm := &fakeRepoManager{s: repo, sc: &fakeScreenshotsRepo{}}
	s, db := newSessionService(t, rm, time.Now())
	defer db.Close()

	filter := sessionsrepo.ListAllFilter{DayStart: day, DayEnd: day.Add(24 * time.Hour), UserIDPrefix: "u"}
	list, _, err := s.ListAllSessions(context.Background(), filter)
	if err != nil {
		t.Fatalf("ListAllSessions error: %v", err)
	}
	if len(list) != 1 || list[0].UserName != "Alice Smith" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if repo.gotListAllFn.UserIDPrefix != "u" || !repo.gotListAllFn.DayStart.Equal(day) {
		t.Fatalf("filter not passed through: %+v", repo.gotListAllFn)
	}
}
