package usecase

import (
	"context"
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
	"go.uber.org/zap"
)

// ContentUseCase serves the editorial collections: articles, testimonials and plans.
type ContentUseCase struct {
	articleRepo     repository.ArticleRepository
	testimonialRepo repository.TestimonialRepository
	planRepo        repository.PlanRepository
	logger          *zap.Logger
	now             Clock
}

func NewContentUseCase(
	articleRepo repository.ArticleRepository,
	testimonialRepo repository.TestimonialRepository,
	planRepo repository.PlanRepository,
	logger *zap.Logger,
) *ContentUseCase {
	return &ContentUseCase{
		articleRepo:     articleRepo,
		testimonialRepo: testimonialRepo,
		planRepo:        planRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (u *ContentUseCase) ListArticles(ctx context.Context, filter dto.ArticleFilter) ([]*entity.Article, error) {
	articles, err := u.articleRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list articles", err)
	}
	return articles, nil
}

func (u *ContentUseCase) GetArticle(ctx context.Context, id string) (*entity.Article, error) {
	article, err := u.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, MsgArticleNotFound, "failed to get article")
	}
	return article, nil
}

func (u *ContentUseCase) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := u.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, lookupError(err, MsgArticleNotFound, "failed to get article")
	}
	return article, nil
}

// CreateArticle stores an article with a slug derived from its title.
func (u *ContentUseCase) CreateArticle(ctx context.Context, req *dto.CreateArticleRequest) (*entity.Article, error) {
	article := entity.NewArticle(req.Titulo, u.now())
	article.Extracto = req.Extracto
	article.Portada = req.Portada
	article.Cuerpo = req.Cuerpo
	article.Categoria = req.Categoria
	article.Autor = req.Autor

	if err := u.articleRepo.Create(ctx, article); err != nil {
		return nil, apperrors.Internal("failed to create article", err)
	}

	u.logger.Info("Article created", zap.String("article_id", article.ID), zap.String("slug", article.Slug))
	return article, nil
}

func (u *ContentUseCase) ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	testimonials, err := u.testimonialRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list testimonials", err)
	}
	return testimonials, nil
}

func (u *ContentUseCase) CreateTestimonial(ctx context.Context, req *dto.CreateTestimonialRequest) (*entity.Testimonial, error) {
	testimonial := &entity.Testimonial{
		ID:     entity.NewID(),
		Nombre: req.Nombre,
		Rol:    req.Rol,
		Texto:  req.Texto,
		Foto:   req.Foto,
	}

	if err := u.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, apperrors.Internal("failed to create testimonial", err)
	}
	return testimonial, nil
}

func (u *ContentUseCase) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	plans, err := u.planRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list plans", err)
	}
	return plans, nil
}
