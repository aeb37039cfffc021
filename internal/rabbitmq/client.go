package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client is the RabbitMQ client used for the post-event queue. It implements
// both ports.PostEventPublisher and ports.PostEventConsumer.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient connects to RabbitMQ and declares the post-event queue.
// Queue declaration is idempotent.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	logger.Info("connected to RabbitMQ", "queue", q.Name, "pending", q.Messages)

	return &Client{conn: conn, channel: ch, queue: q, logger: logger}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error("failed to close RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Error("failed to close RabbitMQ connection", "error", err)
		}
	}
}

// PublishPostEvent publishes a post-published event to the queue.
func (c *Client) PublishPostEvent(ctx context.Context, payload payloads.PostPublishedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	c.logger.Info("post event published", "queue", c.queue.Name, "post_id", payload.PostID)
	return nil
}

// StartConsumingPostEvents consumes post-published events from the queue.
// A message is acknowledged when handler returns nil, requeued on a handler
// error, and dropped when it cannot be decoded at all.
func (c *Client) StartConsumingPostEvents(ctx context.Context, handler func(context.Context, payloads.PostPublishedPayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name,
		"",    // consumer
		false, // auto-ack: acknowledgements are manual
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	c.logger.Info("consumer registered, waiting for messages", "queue", c.queue.Name)

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Info("RabbitMQ channel closed, stopping consumer")
					return
				}

				var payload payloads.PostPublishedPayload
				if err := json.Unmarshal(msg.Body, &payload); err != nil {
					c.logger.Error("failed to unmarshal message, dropping it", "error", err)
					// Bad format: requeueing would loop forever.
					if err := msg.Nack(false, false); err != nil {
						c.logger.Error("failed to NACK malformed message", "error", err)
					}
					continue
				}

				if err := handler(ctx, payload); err != nil {
					c.logger.Error("failed to process message, requeueing", "post_id", payload.PostID, "error", err)
					if err := msg.Nack(false, true); err != nil {
						c.logger.Error("failed to NACK message", "error", err)
					}
					continue
				}

				if err := msg.Ack(false); err != nil {
					c.logger.Error("failed to ACK message", "error", err)
				}
			case <-ctx.Done():
				c.logger.Info("context cancelled, stopping RabbitMQ consumer")
				return
			}
		}
	}()

	return nil
}
