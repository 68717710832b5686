package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// ArticleRepository stores editorial articles.
type ArticleRepository interface {
	List(ctx context.Context, filter dto.ArticleFilter) ([]*entity.Article, error)

	// FindByID returns ErrNotFound when no article has id.
	FindByID(ctx context.Context, id string) (*entity.Article, error)

	// FindBySlug returns the first article with slug, or ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)

	Create(ctx context.Context, article *entity.Article) error

	// Search runs a text query over all articles.
	Search(ctx context.Context, query string, limit int) ([]*entity.Article, error)
}

// TestimonialRepository stores testimonials.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*entity.Testimonial, error)
	Create(ctx context.Context, testimonial *entity.Testimonial) error
}

// PlanRepository stores publishing plans. Plans are only written by the seed loader.
type PlanRepository interface {
	List(ctx context.Context) ([]*entity.Plan, error)
	Create(ctx context.Context, plan *entity.Plan) error
}
