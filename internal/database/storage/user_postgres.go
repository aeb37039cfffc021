package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pq error code for unique_violation
const uniqueViolation = "23505"

// UserStorage implements ports.UserStorage over PostgreSQL.
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage creates a new UserStorage.
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateUser inserts a new user. A unique-constraint violation is mapped onto
// ports.ErrUsernameTaken / ports.ErrEmailTaken so the caller can tell which
// pre-check lost the race.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	query := `
	INSERT INTO users (id, username, email, admin, password_hash, created_at)
	VALUES (:id, :username, :email, :admin, :password_hash, :created_at)
	`

	_, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			if strings.Contains(pqErr.Constraint, "email") {
				return ports.ErrEmailTaken
			}
			return ports.ErrUsernameTaken
		}
		s.logger.Error("failed to insert user", "username", user.Username, "error", err)
		return fmt.Errorf("insert user: %w", err)
	}

	s.logger.Info("user saved",
		"user_id", user.ID,
		"username", user.Username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByID returns the user with the given id, (nil, nil) when absent.
func (s *UserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get user by id", "user_id", id, "error", err)
		return nil, fmt.Errorf("select user by id: %w", err)
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email, (nil, nil) when absent.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username, (nil, nil) when absent.
func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get user by username", "username", username, "error", err)
		return nil, fmt.Errorf("select user by username: %w", err)
	}
	return &user, nil
}

// ListUsers returns all users in registration order.
func (s *UserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	start := time.Now()

	var users []domain.User
	err := s.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY created_at ASC`)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("select users: %w", err)
	}

	s.logger.Info("listed users",
		"count", len(users),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return users, nil
}
