package usecase

import (
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"go.uber.org/zap"
)

// UseCases groups every use case of the API.
type UseCases struct {
	Organization *OrganizationUseCase
	Opportunity  *OpportunityUseCase
	User         *UserUseCase
	Content      *ContentUseCase
	Inbound      *InboundUseCase
	Search       *SearchUseCase
}

// NewUseCases wires every use case to repos and publisher.
func NewUseCases(repos *repository.Repositories, publisher repository.EventPublisher, logger *zap.Logger) *UseCases {
	return &UseCases{
		Organization: NewOrganizationUseCase(repos.Organization, logger),
		Opportunity:  NewOpportunityUseCase(repos.Opportunity, publisher, logger),
		User:         NewUserUseCase(repos.User, logger),
		Content:      NewContentUseCase(repos.Article, repos.Testimonial, repos.Plan, logger),
		Inbound:      NewInboundUseCase(repos.Newsletter, repos.Contact, publisher, logger),
		Search:       NewSearchUseCase(repos.Opportunity, repos.Article, logger),
	}
}
