// Package publisher delivers domain events to the Redis event bus.
package publisher

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/pkg/messaging"
	"go.uber.org/zap"
)

// RedisPublisher publishes events as JSON on one pub/sub channel.
type RedisPublisher struct {
	client  messaging.RedisClient
	channel string
	metrics *Metrics
	logger  *zap.Logger
}

func NewRedisPublisher(client messaging.RedisClient, channel string, metrics *Metrics, logger *zap.Logger) repository.EventPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		metrics: metrics,
		logger:  logger,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event entity.Event) error {
	err := p.client.Publish(ctx, p.channel, event)
	p.metrics.observe(event.Type, err)
	if err != nil {
		return err
	}

	p.logger.Debug("Event published",
		zap.String("event.type", string(event.Type)),
		zap.String("event.id", event.ID),
		zap.String("channel", p.channel),
	)
	return nil
}

// NoopPublisher drops every event. It is used when events are disabled.
type NoopPublisher struct{}

func NewNoopPublisher() repository.EventPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, entity.Event) error {
	return nil
}
