package usecase

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
	"go.uber.org/zap"
)

// SearchUseCase runs keyword search over opportunities and articles.
type SearchUseCase struct {
	oppRepo     repository.OpportunityRepository
	articleRepo repository.ArticleRepository
	logger      *zap.Logger
}

func NewSearchUseCase(
	oppRepo repository.OpportunityRepository,
	articleRepo repository.ArticleRepository,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{oppRepo: oppRepo, articleRepo: articleRepo, logger: logger}
}

// Search queries the resources selected by q.Tipo. Only searched resources
// appear in the result.
func (u *SearchUseCase) Search(ctx context.Context, q dto.SearchQuery) (*entity.SearchResult, error) {
	result := &entity.SearchResult{}

	if q.Tipo.IncludesOpportunities() {
		opps, err := u.oppRepo.Search(ctx, q.Q, entity.SearchOpportunityLimit)
		if err != nil {
			return nil, apperrors.Internal("failed to search opportunities", err)
		}
		if opps == nil {
			opps = []*entity.Opportunity{}
		}
		result.Opportunities = opps
	}

	if q.Tipo.IncludesArticles() {
		articles, err := u.articleRepo.Search(ctx, q.Q, entity.SearchArticleLimit)
		if err != nil {
			return nil, apperrors.Internal("failed to search articles", err)
		}
		if articles == nil {
			articles = []*entity.Article{}
		}
		result.Articles = articles
	}

	u.logger.Debug("Search executed",
		zap.String("q", q.Q),
		zap.String("tipo", string(q.Tipo)),
		zap.Int("opportunities", len(result.Opportunities)),
		zap.Int("articles", len(result.Articles)))
	return result, nil
}
