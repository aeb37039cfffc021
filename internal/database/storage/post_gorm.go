package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostStorage implements ports.PostStorage over PostgreSQL with GORM.
type PostStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostStorage creates a new PostStorage.
func NewPostStorage(db *gorm.DB, logger *slog.Logger) *PostStorage {
	return &PostStorage{db: db, logger: logger}
}

// SavePost inserts a new post row.
func (s *PostStorage) SavePost(ctx context.Context, post *domain.Post) error {
	start := time.Now()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		s.logger.Error("failed to save post", "post_id", post.ID, "error", err)
		return fmt.Errorf("insert post: %w", err)
	}

	s.logger.Info("post saved",
		"post_id", post.ID,
		"user_id", post.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetPostByID returns the post with the given id, (nil, nil) when absent.
func (s *PostStorage) GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get post by id", "post_id", id, "error", err)
		return nil, fmt.Errorf("select post by id: %w", err)
	}
	return &post, nil
}

// ListPosts returns all posts in publication order, with author usernames
// filled in for rendering.
func (s *PostStorage) ListPosts(ctx context.Context) ([]domain.Post, error) {
	start := time.Now()

	var posts []domain.Post
	if err := s.db.WithContext(ctx).Order("date_posted ASC").Find(&posts).Error; err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return nil, fmt.Errorf("select posts: %w", err)
	}

	if err := s.fillAuthorNames(ctx, posts); err != nil {
		return nil, err
	}

	s.logger.Info("listed posts",
		"count", len(posts),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return posts, nil
}

func (s *PostStorage) fillAuthorNames(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(posts))
	seen := make(map[uuid.UUID]bool, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}

	type authorRow struct {
		ID       uuid.UUID
		Username string
	}
	var authors []authorRow
	if err := s.db.WithContext(ctx).Table("users").Where("id IN ?", ids).Find(&authors).Error; err != nil {
		s.logger.Error("failed to resolve post authors", "error", err)
		return fmt.Errorf("select post authors: %w", err)
	}

	names := make(map[uuid.UUID]string, len(authors))
	for _, a := range authors {
		names[a.ID] = a.Username
	}
	for i := range posts {
		posts[i].AuthorName = names[posts[i].UserID]
	}
	return nil
}
