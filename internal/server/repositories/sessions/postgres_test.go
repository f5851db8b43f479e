package sessions

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/workfolio/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sessionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "clock_in_time", "clock_out_time",
		"break_seconds", "break_start_time", "is_clocked_in", "total_duration_seconds",
	})
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+work_sessions\s*\(user_id,\s*clock_in_time,\s*break_seconds,\s*is_clocked_in\)\s*VALUES\s*\(\$1,\s*\$2,\s*0,\s*TRUE\)\s*RETURNING\s+id\s*$`
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("s-1")
	mock.ExpectQuery(q).WithArgs("u-1", clockIn).WillReturnRows(rows)

	got, err := repo.Create(context.Background(), "u-1", clockIn)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "s-1" || !got.IsClockedIn || !got.ClockInTime.Equal(clockIn) {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestGetOpenByUser_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+work_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+clock_out_time\s+IS\s+NULL\s*$`
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	rows := sessionRows().AddRow("s-1", "u-1", clockIn, nil, int64(0), nil, true, int64(0))
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.GetOpenByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetOpenByUser error: %v", err)
	}
	if got.ID != "s-1" || got.ClockOutTime.Valid || got.OnBreak() {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestGetOpenByUser_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+work_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+clock_out_time\s+IS\s+NULL\s*$`
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOpenByUser(context.Background(), "u-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+work_sessions\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSetBreakStart_And_FoldBreak(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	setQ := `(?s)^UPDATE\s+work_sessions\s+SET\s+break_start_time\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(setQ).WithArgs("s-1", at).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetBreakStart(context.Background(), "s-1", at); err != nil {
		t.Fatalf("SetBreakStart error: %v", err)
	}

	foldQ := `(?s)^\s*UPDATE\s+work_sessions\s+SET\s+break_seconds\s*=\s*break_seconds\s*\+\s*\$2,\s*break_start_time\s*=\s*NULL\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(foldQ).WithArgs("s-1", int64(300)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.FoldBreak(context.Background(), "s-1", 300); err != nil {
		t.Fatalf("FoldBreak error: %v", err)
	}
}

func TestClose_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+work_sessions\s+SET\s+clock_out_time\s*=\s*\$2,\s*is_clocked_in\s*=\s*FALSE,\s*total_duration_seconds\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s*$`
	out := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	mock.ExpectExec(q).WithArgs("s-1", out, int64(27000)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Close(context.Background(), "s-1", out, 27000); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestListByUser_OrdersAndLimits(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*\s+FROM\s+work_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+clock_in_time\s+DESC\s+LIMIT\s+\$2\s*$`
	t1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t0 := t1.Add(-24 * time.Hour)

	rows := sessionRows().
		AddRow("s-2", "u-1", t1, nil, int64(0), nil, true, int64(0)).
		AddRow("s-1", "u-1", t0, t0.Add(8*time.Hour), int64(1800), nil, false, int64(27000))
	mock.ExpectQuery(q).WithArgs("u-1", 10).WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1", 10)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s-2" || got[1].TotalDurationSeconds != 27000 {
		t.Fatalf("unexpected sessions: %+v", got)
	}
}

func TestListAll_AppliesFilters(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// the day window is [DayStart, DayEnd): a session starting exactly at the
	// next day's midnight must not match, so the upper bound is strict
	q := `(?s)^\s*SELECT\s+s\.id,.*FROM\s+work_sessions\s+s\s+JOIN\s+users\s+u\s+ON\s+u\.id\s*=\s*s\.user_id.*` +
		`s\.clock_in_time\s*>=\s*\$1.*s\.clock_in_time\s*<\s*\$2[^=].*ORDER\s+BY\s+s\.clock_in_time\s+DESC\s*$`
	dayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	clockIn := dayStart.Add(9 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "clock_in_time", "clock_out_time", "break_seconds",
		"break_start_time", "is_clocked_in", "total_duration_seconds", "user_name",
	}).AddRow("s-1", "u-1", clockIn, nil, int64(0), nil, true, int64(0), "Alice Smith")

	mock.ExpectQuery(q).
		WithArgs(sql.NullTime{Time: dayStart, Valid: true}, sql.NullTime{Time: dayEnd, Valid: true}, "u-1").
		WillReturnRows(rows)

	got, err := repo.ListAll(context.Background(), ListAllFilter{DayStart: dayStart, DayEnd: dayEnd, UserIDPrefix: "u-1"})
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 1 || got[0].UserName != "Alice Smith" {
		t.Fatalf("unexpected sessions: %+v", got)
	}
}

func TestListAll_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+s\.id,.*$`
	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	_, err := repo.ListAll(context.Background(), ListAllFilter{})
	if err == nil || !regexp.MustCompile(`failed to select sessions: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
