package repository

import (
	"context"
	"errors"

	domainrepo "github.com/workhoops/workhoops-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitRepositories builds every Mongo repository on db.
func InitRepositories(db *mongo.Database) *domainrepo.Repositories {
	return &domainrepo.Repositories{
		Organization: NewOrganizationRepository(db),
		Opportunity:  NewOpportunityRepository(db),
		User:         NewUserRepository(db),
		Article:      NewArticleRepository(db),
		Testimonial:  NewTestimonialRepository(db),
		Plan:         NewPlanRepository(db),
		Newsletter:   NewNewsletterRepository(db),
		Contact:      NewContactRepository(db),
	}
}

// findOne decodes the first document matching filter into out.
func findOne(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}) error {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainrepo.ErrNotFound
	}
	return err
}

// findAll decodes every document matching filter into out, a pointer to a slice.
func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}, opts ...*options.FindOptions) error {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
