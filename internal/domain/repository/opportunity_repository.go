package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// OpportunityRepository stores opportunities.
type OpportunityRepository interface {
	// List applies filter as given; Estado must already be resolved.
	List(ctx context.Context, filter dto.OpportunityFilter) ([]*entity.Opportunity, error)

	// FindByID returns ErrNotFound when no opportunity has id.
	FindByID(ctx context.Context, id string) (*entity.Opportunity, error)

	// FindBySlug returns the first opportunity with slug, or ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (*entity.Opportunity, error)

	Create(ctx context.Context, opp *entity.Opportunity) error

	// UpdateStatus sets estado and returns the updated opportunity, or
	// ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status entity.OpportunityStatus) (*entity.Opportunity, error)

	// Search runs a text query over published opportunities.
	Search(ctx context.Context, query string, limit int) ([]*entity.Opportunity, error)
}
