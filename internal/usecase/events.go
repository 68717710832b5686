package usecase

import (
	"context"
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"go.uber.org/zap"
)

// Clock returns the current time. Use cases stamp records with it.
type Clock func() time.Time

// eventEmitter publishes domain events after a successful write. Failures are
// logged and never reach the caller.
type eventEmitter struct {
	publisher repository.EventPublisher
	logger    *zap.Logger
}

func (e eventEmitter) emit(ctx context.Context, event entity.Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn("Failed to publish event",
			zap.String("event.type", string(event.Type)),
			zap.String("event.id", event.ID),
			zap.Error(err),
		)
	}
}
