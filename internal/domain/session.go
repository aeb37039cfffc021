package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a client-held token to a user id.
// Corresponds to the 'sessions' table in the database.
type Session struct {
	Token     string    `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Expired reports whether the session is past its expiry time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
