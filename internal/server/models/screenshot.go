package models

import "time"

// Screenshot is one captured desktop image attached to a session.
// Rows are append-only; display order is by CapturedAt.
type Screenshot struct {
	ID         string    `db:"id"`
	SessionID  string    `db:"session_id"`
	StorageKey string    `db:"storage_key"`
	URL        string    `db:"url"`
	CapturedAt time.Time `db:"captured_at"`
}
