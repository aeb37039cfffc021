package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

// postUseCase implements PostUseCase
type postUseCase struct {
	postStorage ports.PostStorage
	publisher   ports.PostEventPublisher
	logger      *slog.Logger
}

// NewPostUseCase creates a new PostUseCase. publisher may be nil, in which
// case no events are emitted.
func NewPostUseCase(
	postStorage ports.PostStorage,
	publisher ports.PostEventPublisher,
	logger *slog.Logger,
) PostUseCase {
	return &postUseCase{
		postStorage: postStorage,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *postUseCase) Publish(ctx context.Context, author *domain.User, title, content string) (*domain.Post, error) {
	post := &domain.Post{
		ID:         uuid.New(),
		Title:      title,
		Content:    content,
		DatePosted: time.Now().UTC(),
		UserID:     author.ID,
		AuthorName: author.Username,
	}

	if err := uc.postStorage.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("usecase: save post: %w", err)
	}

	uc.logger.Info("post published",
		"post_id", post.ID,
		"author_id", author.ID,
		"title", post.Title,
	)

	if uc.publisher != nil {
		payload := payloads.PostPublishedPayload{
			PostID:     post.ID.String(),
			AuthorID:   author.ID.String(),
			Title:      post.Title,
			DatePosted: post.DatePosted,
		}
		// The post is already durable; a queue failure must not undo a
		// successful publish.
		if err := uc.publisher.PublishPostEvent(ctx, payload); err != nil {
			uc.logger.Warn("failed to publish post event", "post_id", post.ID, "error", err)
		}
	}

	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := uc.postStorage.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list posts: %w", err)
	}
	return posts, nil
}

func (uc *postUseCase) GetPostDetails(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := uc.postStorage.GetPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: get post %s: %w", id, err)
	}
	return post, nil
}
