// Package models defines the server-side persistence models.
package models

import "time"

// Role values stored in the users table.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// FullName is the display name shown on the admin dashboard.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
