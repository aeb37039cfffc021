package ports

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// PostEventPublisher publishes a post-published event to the queue.
type PostEventPublisher interface {
	PublishPostEvent(ctx context.Context, payload payloads.PostPublishedPayload) error
}

// PostEventConsumer consumes post-published events from the queue and hands
// each one to the handler. Delivery is acknowledged only when the handler
// returns nil.
type PostEventConsumer interface {
	StartConsumingPostEvents(ctx context.Context, handler func(context.Context, payloads.PostPublishedPayload) error) error
}
