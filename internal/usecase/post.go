package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

// PostUseCase defines the business logic around the post ledger.
type PostUseCase interface {
	// Publish creates a post owned by author, dated now (UTC). The caller
	// is responsible for having authenticated the author. On success a
	// post-published event is emitted to the message queue, best-effort.
	Publish(ctx context.Context, author *domain.User, title, content string) (*domain.Post, error)

	// ListPosts returns all posts with their author usernames, in
	// publication order.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// GetPostDetails returns a single post by its id, (nil, nil) when it
	// does not exist.
	GetPostDetails(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}
