package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies an account for access-control decisions.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// User represents a registered account.
// Corresponds to the 'users' table in the database.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Admin        bool      `json:"admin" db:"admin"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Role derives the role enumeration from the stored admin flag.
func (u User) Role() Role {
	if u.Admin {
		return RoleAdmin
	}
	return RoleStandard
}
