package payloads

import "time"

// PostPublishedPayload carries the data for a post-published event sent
// through RabbitMQ.
type PostPublishedPayload struct {
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	Title      string    `json:"title"`
	DatePosted time.Time `json:"date_posted"`
}
