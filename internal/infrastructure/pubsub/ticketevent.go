package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

// DefaultTicketEventChannel is used when no channel is configured.
const DefaultTicketEventChannel = "deskline:tickets:events"

// TicketEventMessage is the wire form of a ticket event.
type TicketEventMessage struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	TicketID   uint     `json:"ticketId"`
	CommentID  uint     `json:"commentId,omitempty"`
	ActorID    uint     `json:"actorId"`
	Fields     []string `json:"fields,omitempty"`
	OccurredAt string   `json:"occurredAt"`
}

func NewTicketEventMessage(event ticket.Event) TicketEventMessage {
	return TicketEventMessage{
		ID:         uuid.NewString(),
		Type:       string(event.Type),
		TicketID:   event.TicketID,
		CommentID:  event.CommentID,
		ActorID:    event.ActorID,
		Fields:     event.Fields,
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}

// TicketEventHandler is a callback function for handling ticket events
type TicketEventHandler func(ctx context.Context, msg TicketEventMessage)

// redisPublisher is the part of *redis.Client used for publishing.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisTicketEventBus publishes ticket events on a redis channel and lets
// other processes follow them.
type RedisTicketEventBus struct {
	publisher redisPublisher
	client    *redis.Client
	channel   string
	logger    logger.Interface
}

func NewRedisTicketEventBus(client *redis.Client, channel string, logger logger.Interface) *RedisTicketEventBus {
	if channel == "" {
		channel = DefaultTicketEventChannel
	}
	return &RedisTicketEventBus{
		publisher: client,
		client:    client,
		channel:   channel,
		logger:    logger,
	}
}

func (b *RedisTicketEventBus) Channel() string {
	return b.channel
}

func (b *RedisTicketEventBus) Publish(ctx context.Context, event ticket.Event) error {
	msg := NewTicketEventMessage(event)
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.publisher.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish ticket event",
			"event_id", msg.ID,
			"type", msg.Type,
			"ticket_id", msg.TicketID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("ticket event published",
		"event_id", msg.ID,
		"type", msg.Type,
		"ticket_id", msg.TicketID,
	)
	return nil
}

// Subscribe blocks, calling handler for every event until ctx is done.
func (b *RedisTicketEventBus) Subscribe(ctx context.Context, handler TicketEventHandler) error {
	if b.client == nil {
		return fmt.Errorf("redis client is not configured")
	}

	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to ticket events", "channel", b.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("ticket event subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("ticket event channel closed")
				return nil
			}

			event, err := DecodeTicketEvent([]byte(msg.Payload))
			if err != nil {
				b.logger.Warnw("failed to unmarshal ticket event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			handler(ctx, event)
		}
	}
}

func DecodeTicketEvent(payload []byte) (TicketEventMessage, error) {
	var msg TicketEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg, err
	}
	if msg.Type == "" {
		return msg, fmt.Errorf("event type is missing")
	}
	return msg, nil
}
