// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
)

// OrganizationRepository is a mock implementation of repository.OrganizationRepository
type OrganizationRepository struct {
	mock.Mock
}

func (m *OrganizationRepository) List(ctx context.Context) ([]*entity.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Organization), args.Error(1)
}

func (m *OrganizationRepository) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Organization), args.Error(1)
}

func (m *OrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	return m.Called(ctx, org).Error(0)
}

// OpportunityRepository is a mock implementation of repository.OpportunityRepository
type OpportunityRepository struct {
	mock.Mock
}

func (m *OpportunityRepository) List(ctx context.Context, filter dto.OpportunityFilter) ([]*entity.Opportunity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Opportunity), args.Error(1)
}

func (m *OpportunityRepository) FindByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *OpportunityRepository) FindBySlug(ctx context.Context, slug string) (*entity.Opportunity, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *OpportunityRepository) Create(ctx context.Context, opp *entity.Opportunity) error {
	return m.Called(ctx, opp).Error(0)
}

func (m *OpportunityRepository) UpdateStatus(ctx context.Context, id string, status entity.OpportunityStatus) (*entity.Opportunity, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *OpportunityRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Opportunity, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Opportunity), args.Error(1)
}

// UserRepository is a mock implementation of repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) List(ctx context.Context, filter dto.UserFilter) ([]*entity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// ArticleRepository is a mock implementation of repository.ArticleRepository
type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) List(ctx context.Context, filter dto.ArticleFilter) ([]*entity.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *ArticleRepository) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *ArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *ArticleRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Article, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

// TestimonialRepository is a mock implementation of repository.TestimonialRepository
type TestimonialRepository struct {
	mock.Mock
}

func (m *TestimonialRepository) List(ctx context.Context) ([]*entity.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Testimonial), args.Error(1)
}

func (m *TestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	return m.Called(ctx, testimonial).Error(0)
}

// PlanRepository is a mock implementation of repository.PlanRepository
type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) List(ctx context.Context) ([]*entity.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Plan), args.Error(1)
}

func (m *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

// NewsletterRepository is a mock implementation of repository.NewsletterRepository
type NewsletterRepository struct {
	mock.Mock
}

func (m *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscription), args.Error(1)
}

func (m *NewsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	return m.Called(ctx, sub).Error(0)
}

// ContactRepository is a mock implementation of repository.ContactRepository
type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) Create(ctx context.Context, form *entity.ContactForm) error {
	return m.Called(ctx, form).Error(0)
}

// EventPublisher is a mock implementation of repository.EventPublisher
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

// Set bundles one mock per repository.
type Set struct {
	Organization *OrganizationRepository
	Opportunity  *OpportunityRepository
	User         *UserRepository
	Article      *ArticleRepository
	Testimonial  *TestimonialRepository
	Plan         *PlanRepository
	Newsletter   *NewsletterRepository
	Contact      *ContactRepository
}

// NewSet returns fresh mocks for every repository.
func NewSet() *Set {
	return &Set{
		Organization: new(OrganizationRepository),
		Opportunity:  new(OpportunityRepository),
		User:         new(UserRepository),
		Article:      new(ArticleRepository),
		Testimonial:  new(TestimonialRepository),
		Plan:         new(PlanRepository),
		Newsletter:   new(NewsletterRepository),
		Contact:      new(ContactRepository),
	}
}

// Repositories exposes the mocks through the repository.Repositories struct.
func (s *Set) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Organization: s.Organization,
		Opportunity:  s.Opportunity,
		User:         s.User,
		Article:      s.Article,
		Testimonial:  s.Testimonial,
		Plan:         s.Plan,
		Newsletter:   s.Newsletter,
		Contact:      s.Contact,
	}
}

// AssertExpectations asserts every mock in the set.
func (s *Set) AssertExpectations(t mock.TestingT) {
	s.Organization.AssertExpectations(t)
	s.Opportunity.AssertExpectations(t)
	s.User.AssertExpectations(t)
	s.Article.AssertExpectations(t)
	s.Testimonial.AssertExpectations(t)
	s.Plan.AssertExpectations(t)
	s.Newsletter.AssertExpectations(t)
	s.Contact.AssertExpectations(t)
}
