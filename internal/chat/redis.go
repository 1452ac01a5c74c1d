package chat

import (
	"context"
	"fmt"

	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBroadcaster publishes chat frames on a Redis channel so that every
// instance behind a load balancer can relay them to its own sessions.
type RedisBroadcaster struct {
	client  redis.UniversalClient
	channel string
	hub     *Hub
	logger  *zap.Logger
}

func NewRedisBroadcaster(client redis.UniversalClient, channel string, hub *Hub, logger *zap.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{
		client:  client,
		channel: channel,
		hub:     hub,
		logger:  logger,
	}
}

func (b *RedisBroadcaster) Broadcast(ctx context.Context, msg domain.Message) error {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("EncodeMessage: %w", err)
	}

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("client.Publish: %w", err)
	}

	return nil
}

// Run relays published frames to the local hub until ctx is done.
func (b *RedisBroadcaster) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("sub.Receive: %w", err)
	}

	b.logger.Info("chat relay subscribed", zap.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			b.hub.Deliver([]byte(m.Payload))
		}
	}
}
