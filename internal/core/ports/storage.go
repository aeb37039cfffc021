package ports

import (
	"context"
	"errors"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// Storage-level uniqueness failures. The database unique indexes are the
// authoritative guard against concurrent registrations; implementations map
// constraint violations onto these so callers can recover them.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already in use")
)

// UserStorage defines methods for interacting with the user store.
// Lookup methods return (nil, nil) when no row matches.
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// PostStorage defines methods for interacting with the post store.
type PostStorage interface {
	SavePost(ctx context.Context, post *domain.Post) error
	GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
}

// SessionStorage defines methods for interacting with the session store.
type SessionStorage interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteUserSessions(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context) error
}
