package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionStorage implements ports.SessionStorage over PostgreSQL.
type SessionStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage(db *sqlx.DB, logger *slog.Logger) *SessionStorage {
	return &SessionStorage{db: db, logger: logger}
}

// CreateSession inserts a new session row.
func (s *SessionStorage) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `
	INSERT INTO sessions (token, user_id, created_at, expires_at)
	VALUES (:token, :user_id, :created_at, :expires_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, session); err != nil {
		s.logger.Error("failed to insert session", "user_id", session.UserID, "error", err)
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession returns the session for token, (nil, nil) when absent.
func (s *SessionStorage) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	err := s.db.GetContext(ctx, &session, `SELECT * FROM sessions WHERE token = $1`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get session", "error", err)
		return nil, fmt.Errorf("select session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes the session for token. Deleting a token that does not
// exist is not an error.
func (s *SessionStorage) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		s.logger.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteUserSessions removes every session belonging to userID.
func (s *SessionStorage) DeleteUserSessions(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
		s.logger.Error("failed to delete user sessions", "user_id", userID, "error", err)
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions past their expiry time.
func (s *SessionStorage) DeleteExpiredSessions(ctx context.Context) error {
	start := time.Now()

	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to delete expired sessions", "error", err)
		return fmt.Errorf("delete expired sessions: %w", err)
	}

	if removed, err := res.RowsAffected(); err == nil && removed > 0 {
		s.logger.Info("expired sessions removed",
			"count", removed,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return nil
}
