package models

import "time"

type RefreshToken struct {
	UserID  string    `db:"user_id"`
	Token   string    `db:"token"`
	Expires time.Time `db:"expires_at"`
}
