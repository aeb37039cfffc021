package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/credential"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	logger      *slog.Logger
}

// NewUserUseCase creates a new UserUseCase over the given user storage.
func NewUserUseCase(userStorage ports.UserStorage, logger *slog.Logger) UserUseCase {
	return &userUseCase{userStorage: userStorage, logger: logger}
}

func (uc *userUseCase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	// Advisory pre-checks. The unique indexes in the database remain the
	// authoritative guard under concurrent registrations.
	existing, err := uc.userStorage.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("usecase: check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	existing, err = uc.userStorage.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("usecase: check email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return nil, ErrPasswordMismatch
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := credential.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		Admin:        in.RequestedAdmin,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		// A constraint violation here means we lost a race that the
		// pre-checks could not see. Surface it as the matching
		// duplicate error rather than a fault.
		switch {
		case errors.Is(err, ports.ErrUsernameTaken):
			return nil, ErrDuplicateUsername
		case errors.Is(err, ports.ErrEmailTaken):
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("usecase: create user: %w", err)
	}

	uc.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role(),
	)
	return user, nil
}

func (uc *userUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: authenticate: %w", err)
	}
	if user == nil || !credential.Verify(password, user.PasswordHash) {
		// Same error for "no such email" and "wrong password".
		return nil, ErrInvalidCredentials
	}

	uc.logger.Info("user authenticated", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (uc *userUseCase) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: find by email: %w", err)
	}
	return user, nil
}

func (uc *userUseCase) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: find by username: %w", err)
	}
	return user, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userStorage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list users: %w", err)
	}
	return users, nil
}
