package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

// SessionUseCase is the session/auth gate: it establishes and tears down the
// authenticated session for a client and resolves the current identity from a
// session token. A client with no valid token is anonymous.
type SessionUseCase interface {
	// Login establishes a durable session bound to user. Any prior
	// sessions of that user are replaced.
	Login(ctx context.Context, user *domain.User) (*domain.Session, error)

	// Logout invalidates token. Logging out with no or an unknown token
	// is a no-op, not an error.
	Logout(ctx context.Context, token string) error

	// CurrentIdentity resolves token to a user. It returns (nil, nil)
	// when the token is empty, unknown, expired, or references a user
	// that no longer exists.
	CurrentIdentity(ctx context.Context, token string) (*domain.User, error)
}
