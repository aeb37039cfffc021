package app

import (
	"context"
	"fmt"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

// runWorker consumes post-published events from RabbitMQ and blocks until
// ctx is cancelled. The worker resolves each event against the post ledger
// and records the publication; events for posts that no longer resolve are
// acknowledged and dropped.
func (a *App) runWorker(ctx context.Context) error {
	a.logger.Info("worker started, waiting for post events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	eventHandler := func(ctx context.Context, payload payloads.PostPublishedPayload) error {
		postID, err := uuid.Parse(payload.PostID)
		if err != nil {
			// Malformed id: requeueing cannot fix it.
			a.logger.Error("event carries invalid post id", "post_id", payload.PostID, "error", err)
			return nil
		}

		post, err := a.postUseCase.GetPostDetails(ctx, postID)
		if err != nil {
			return fmt.Errorf("resolve post %s: %w", postID, err)
		}
		if post == nil {
			a.logger.Warn("event references unknown post, dropping", "post_id", postID)
			return nil
		}

		a.logger.Info("post publication recorded",
			"post_id", post.ID,
			"author_id", post.UserID,
			"title", post.Title,
			"date_posted", post.DatePosted,
		)
		return nil
	}

	if err := a.postEventConsumer.StartConsumingPostEvents(workerCtx, eventHandler); err != nil {
		return fmt.Errorf("start post event consumer: %w", err)
	}

	<-ctx.Done()
	a.logger.Info("worker stopping")
	return nil
}
