package models

import (
	"database/sql"
	"time"
)

// Session is one clock-in-to-clock-out work period for one user.
//
// Invariants maintained by the sessions service:
//   - at most one open session (clock_out_time IS NULL) per user;
//   - BreakStartTime is set iff the session is currently on break;
//   - BreakSeconds never decreases;
//   - ClockOutTime, when set, is strictly after ClockInTime.
type Session struct {
	ID                   string       `db:"id"`
	UserID               string       `db:"user_id"`
	ClockInTime          time.Time    `db:"clock_in_time"`
	ClockOutTime         sql.NullTime `db:"clock_out_time"`
	BreakSeconds         int64        `db:"break_seconds"`
	BreakStartTime       sql.NullTime `db:"break_start_time"`
	IsClockedIn          bool         `db:"is_clocked_in"`
	TotalDurationSeconds int64        `db:"total_duration_seconds"`

	// UserName is joined in for admin listings only; it is not a column of
	// work_sessions.
	UserName string `db:"-"`
}

// OnBreak reports whether the session currently has an open break interval.
func (s *Session) OnBreak() bool {
	return s.BreakStartTime.Valid
}
