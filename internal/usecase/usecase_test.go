package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/internal/domain/repository/mocks"
	"github.com/workhoops/workhoops-api/internal/usecase"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

func TestOrganizationUseCase(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.OrganizationRepository)
	uc := usecase.NewOrganizationUseCase(repo, zap.NewNop())

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Organization")).Return(nil)
	repo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	org, err := uc.Create(ctx, &dto.CreateOrganizationRequest{Nombre: "FC Barcelona Basquet"})
	require.NoError(t, err)
	assert.Equal(t, "fc-barcelona-basquet", org.Slug)
	assert.Equal(t, map[string]string{}, org.Redes)
	assert.False(t, org.Verificada)

	second, err := uc.Create(ctx, &dto.CreateOrganizationRequest{
		Nombre: "FC Barcelona Basquet",
		Redes:  map[string]string{"instagram": "@fcbbasket"},
	})
	require.NoError(t, err)
	assert.Equal(t, org.Slug, second.Slug)
	assert.NotEqual(t, org.ID, second.ID)
	assert.Equal(t, "@fcbbasket", second.Redes["instagram"])

	_, err = uc.Get(ctx, "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, usecase.MsgOrganizationNotFound, appErr.Message())
	repo.AssertExpectations(t)
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	uc := usecase.NewUserUseCase(repo, zap.NewNop())
	repo.On("Create", ctx, mock.Anything).Return(nil)

	user, err := uc.Create(ctx, &dto.CreateUserRequest{Nombre: "Laura", Email: "laura@example.com", Rol: entity.UserRoleJugador})
	require.NoError(t, err)
	assert.True(t, user.DisponibilidadViajar)
	assert.False(t, user.Verificado)

	noTravel := false
	user, err = uc.Create(ctx, &dto.CreateUserRequest{
		Nombre: "Pau", Email: "pau@example.com", Rol: entity.UserRoleArbitro, DisponibilidadViajar: &noTravel,
	})
	require.NoError(t, err)
	assert.False(t, user.DisponibilidadViajar)
}

func TestContentUseCase(t *testing.T) {
	ctx := context.Background()
	mockSet := mocks.NewSet()
	uc := usecase.NewContentUseCase(mockSet.Article, mockSet.Testimonial, mockSet.Plan, zap.NewNop())

	mockSet.Article.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)
	mockSet.Article.On("FindBySlug", ctx, "missing-slug").Return(nil, repository.ErrNotFound)
	mockSet.Article.On("Create", ctx, mock.Anything).Return(nil)
	mockSet.Plan.On("List", ctx).Return(nil, apperrors.New("cursor killed"))
	mockSet.Testimonial.On("Create", ctx, mock.Anything).Return(nil)

	_, err := uc.GetArticle(ctx, "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, usecase.MsgArticleNotFound, appErr.Message())

	_, err = uc.GetArticleBySlug(ctx, "missing-slug")
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))

	article, err := uc.CreateArticle(ctx, &dto.CreateArticleRequest{
		Titulo: "Cómo preparar una prueba/tryout", Extracto: "e", Cuerpo: "c", Categoria: "consejos", Autor: "Redacción",
	})
	require.NoError(t, err)
	assert.Equal(t, "cómo-preparar-una-prueba-tryout", article.Slug)

	testimonial, err := uc.CreateTestimonial(ctx, &dto.CreateTestimonialRequest{Nombre: "Ana", Rol: "Jugadora", Texto: "Genial"})
	require.NoError(t, err)
	assert.NotEmpty(t, testimonial.ID)

	_, err = uc.ListPlans(ctx)
	assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))

	mockSet.AssertExpectations(t)
}

func TestInboundUseCase_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("new email is stored once", func(t *testing.T) {
		newsletter := new(mocks.NewsletterRepository)
		publisher := new(mocks.EventPublisher)
		uc := usecase.NewInboundUseCase(newsletter, new(mocks.ContactRepository), publisher, zap.NewNop())

		newsletter.On("FindByEmail", ctx, "fan@example.com").Return(nil, repository.ErrNotFound).Once()
		newsletter.On("Create", ctx, mock.MatchedBy(func(sub *entity.NewsletterSubscription) bool {
			return sub.Email == "fan@example.com" && sub.Activa
		})).Return(nil).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		resp, err := uc.Subscribe(ctx, "fan@example.com")
		require.NoError(t, err)
		assert.Equal(t, usecase.MsgSubscribed, resp.Message)

		newsletter.On("FindByEmail", ctx, "fan@example.com").
			Return(&entity.NewsletterSubscription{Email: "fan@example.com", Activa: true}, nil).Once()

		resp, err = uc.Subscribe(ctx, "fan@example.com")
		require.NoError(t, err)
		assert.Equal(t, usecase.MsgAlreadySubscribed, resp.Message)

		newsletter.AssertNumberOfCalls(t, "Create", 1)
		publisher.AssertNumberOfCalls(t, "Publish", 1)
	})

	t.Run("lookup failure is internal", func(t *testing.T) {
		newsletter := new(mocks.NewsletterRepository)
		uc := usecase.NewInboundUseCase(newsletter, nil, nil, zap.NewNop())
		newsletter.On("FindByEmail", ctx, mock.Anything).Return(nil, apperrors.New("no primary"))

		_, err := uc.Subscribe(ctx, "fan@example.com")
		assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
		newsletter.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInboundUseCase_SubmitContact(t *testing.T) {
	ctx := context.Background()
	contact := new(mocks.ContactRepository)
	publisher := new(mocks.EventPublisher)
	uc := usecase.NewInboundUseCase(new(mocks.NewsletterRepository), contact, publisher, zap.NewNop())

	contact.On("Create", ctx, mock.MatchedBy(func(form *entity.ContactForm) bool {
		return form.ID != "" && !form.FechaEnvio.IsZero() && form.Categoria == "clubes"
	})).Return(nil)

	resp, err := uc.SubmitContact(ctx, &dto.ContactRequest{Nombre: "Ana", Email: "ana@example.com", Categoria: "clubes", Mensaje: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgContactReceived, resp.Message)
	contact.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSearchUseCase(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name          string
		scope         entity.SearchScope
		opportunities bool
		articles      bool
	}{
		{name: "all", scope: entity.SearchScopeAll, opportunities: true, articles: true},
		{name: "opportunities only", scope: entity.SearchScopeOportunidades, opportunities: true},
		{name: "articles only", scope: entity.SearchScopeArticulos, articles: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opps := new(mocks.OpportunityRepository)
			articles := new(mocks.ArticleRepository)
			uc := usecase.NewSearchUseCase(opps, articles, zap.NewNop())

			if tc.opportunities {
				opps.On("Search", ctx, "baloncesto", entity.SearchOpportunityLimit).Return(nil, nil)
			}
			if tc.articles {
				articles.On("Search", ctx, "baloncesto", entity.SearchArticleLimit).
					Return([]*entity.Article{{ID: "a1"}}, nil)
			}

			result, err := uc.Search(ctx, dto.SearchQuery{Q: "baloncesto", Tipo: tc.scope})
			require.NoError(t, err)
			assert.Equal(t, tc.opportunities, result.Opportunities != nil)
			assert.Equal(t, tc.articles, result.Articles != nil)

			opps.AssertExpectations(t)
			articles.AssertExpectations(t)
			if !tc.opportunities {
				opps.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
			}
			if !tc.articles {
				articles.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("failure is internal", func(t *testing.T) {
		opps := new(mocks.OpportunityRepository)
		uc := usecase.NewSearchUseCase(opps, new(mocks.ArticleRepository), zap.NewNop())
		opps.On("Search", ctx, "x", entity.SearchOpportunityLimit).Return(nil, apperrors.New("text index missing"))

		_, err := uc.Search(ctx, dto.SearchQuery{Q: "x", Tipo: entity.SearchScopeOportunidades})
		assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
	})
}
