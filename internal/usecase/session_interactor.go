package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
)

// tokenLength is the number of random bytes in a session token
// (32 bytes = 64 hex characters).
const tokenLength = 32

// sessionUseCase implements SessionUseCase
type sessionUseCase struct {
	sessionStorage ports.SessionStorage
	userStorage    ports.UserStorage
	ttl            time.Duration
	logger         *slog.Logger
}

// NewSessionUseCase creates a new SessionUseCase. ttl bounds the lifetime of
// every session it establishes.
func NewSessionUseCase(
	sessionStorage ports.SessionStorage,
	userStorage ports.UserStorage,
	ttl time.Duration,
	logger *slog.Logger,
) SessionUseCase {
	return &sessionUseCase{
		sessionStorage: sessionStorage,
		userStorage:    userStorage,
		ttl:            ttl,
		logger:         logger,
	}
}

func (uc *sessionUseCase) Login(ctx context.Context, user *domain.User) (*domain.Session, error) {
	// One active session per user: drop any older ones first.
	if err := uc.sessionStorage.DeleteUserSessions(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("usecase: delete old sessions: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("usecase: generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}

	if err := uc.sessionStorage.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("usecase: create session: %w", err)
	}

	uc.logger.Info("session established",
		"user_id", user.ID,
		"username", user.Username,
		"expires_at", session.ExpiresAt,
	)
	return session, nil
}

func (uc *sessionUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.sessionStorage.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("usecase: delete session: %w", err)
	}
	uc.logger.Info("session destroyed")
	return nil
}

func (uc *sessionUseCase) CurrentIdentity(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := uc.sessionStorage.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("usecase: get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if session.Expired(time.Now().UTC()) {
		if err := uc.sessionStorage.DeleteSession(ctx, token); err != nil {
			uc.logger.Warn("failed to delete expired session", "error", err)
		}
		return nil, nil
	}

	user, err := uc.userStorage.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("usecase: resolve session user: %w", err)
	}
	if user == nil {
		// The referenced user is gone; the session is dead weight.
		if err := uc.sessionStorage.DeleteSession(ctx, token); err != nil {
			uc.logger.Warn("failed to delete orphaned session", "error", err)
		}
		return nil, nil
	}

	return user, nil
}

// generateToken produces a cryptographically random session token.
func generateToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
