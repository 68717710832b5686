package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// EventPublisher delivers domain events to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.Event) error
}
