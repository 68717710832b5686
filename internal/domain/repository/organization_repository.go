package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// OrganizationRepository stores organizations.
type OrganizationRepository interface {
	// List returns every organization in storage order.
	List(ctx context.Context) ([]*entity.Organization, error)

	// FindByID returns ErrNotFound when no organization has id.
	FindByID(ctx context.Context, id string) (*entity.Organization, error)

	Create(ctx context.Context, org *entity.Organization) error
}
