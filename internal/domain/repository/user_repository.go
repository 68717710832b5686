package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// UserRepository stores user profiles.
type UserRepository interface {
	List(ctx context.Context, filter dto.UserFilter) ([]*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
