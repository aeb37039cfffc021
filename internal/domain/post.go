package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a published text post,
// corresponds to the 'posts' table in the database.
// The author is fixed at creation; posts are never updated or deleted.
type Post struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted" gorm:"column:date_posted"`
	UserID     uuid.UUID `json:"user_id"`

	// Author username, filled from a join for rendering. Not a column.
	AuthorName string `json:"author_name,omitempty" gorm:"-"`
}

func (Post) TableName() string {
	return "posts"
}
