package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

// RegisterInput carries the registration form values. ConfirmPassword is
// optional: when empty it is treated as not supplied and skipped.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	RequestedAdmin  bool
}

// UserUseCase defines the business logic around user identities: the user
// directory of the system.
type UserUseCase interface {
	// Register validates the input, hashes the password and stores a new
	// user. Fails with ErrDuplicateUsername, ErrDuplicateEmail,
	// ErrPasswordMismatch or ErrPasswordTooShort; nothing is stored on
	// failure.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Authenticate resolves email to a user and verifies the password
	// against the stored hash. Both an unknown email and a wrong password
	// fail with the same ErrInvalidCredentials so the response does not
	// reveal whether an account exists.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// FindByEmail and FindByUsername are plain lookups, (nil, nil) when
	// no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers returns all users in registration order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
