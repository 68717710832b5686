package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeededCollections are emptied before the dataset is inserted. Newsletter
// subscriptions and contact forms are left alone.
var SeededCollections = []string{
	model.CollectionOrganizations,
	model.CollectionOpportunities,
	model.CollectionUsers,
	model.CollectionArticles,
	model.CollectionTestimonials,
	model.CollectionPlans,
}

// Clearer removes every document of a collection.
type Clearer interface {
	Clear(ctx context.Context, collection string) (int64, error)
}

// MongoClearer clears collections with DeleteMany.
type MongoClearer struct {
	db *mongo.Database
}

func NewMongoClearer(db *mongo.Database) *MongoClearer {
	return &MongoClearer{db: db}
}

func (c *MongoClearer) Clear(ctx context.Context, collection string) (int64, error) {
	res, err := c.db.Collection(collection).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Summary counts the inserted documents per collection.
type Summary map[string]int

// Loader replaces the seeded collections with a dataset.
type Loader struct {
	clearer Clearer
	repos   *repository.Repositories
	logger  *zap.Logger
}

func NewLoader(clearer Clearer, repos *repository.Repositories, logger *zap.Logger) *Loader {
	return &Loader{clearer: clearer, repos: repos, logger: logger}
}

// Load clears the seeded collections and inserts fixtures built at now. It
// stops at the first failure; collections already written stay written.
func (l *Loader) Load(ctx context.Context, fixtures *Fixtures, now time.Time) (Summary, error) {
	for _, coll := range SeededCollections {
		deleted, err := l.clearer.Clear(ctx, coll)
		if err != nil {
			return nil, fmt.Errorf("clear %s: %w", coll, err)
		}
		l.logger.Info("Collection cleared", zap.String("collection", coll), zap.Int64("deleted", deleted))
	}

	ds := fixtures.Build(now)
	summary := Summary{}

	for _, org := range ds.Organizations {
		if err := l.repos.Organization.Create(ctx, org); err != nil {
			return summary, fmt.Errorf("insert organization %s: %w", org.ID, err)
		}
		summary[model.CollectionOrganizations]++
	}
	for _, opp := range ds.Opportunities {
		if err := l.repos.Opportunity.Create(ctx, opp); err != nil {
			return summary, fmt.Errorf("insert opportunity %s: %w", opp.ID, err)
		}
		summary[model.CollectionOpportunities]++
	}
	for _, user := range ds.Users {
		if err := l.repos.User.Create(ctx, user); err != nil {
			return summary, fmt.Errorf("insert user %s: %w", user.ID, err)
		}
		summary[model.CollectionUsers]++
	}
	for _, article := range ds.Articles {
		if err := l.repos.Article.Create(ctx, article); err != nil {
			return summary, fmt.Errorf("insert article %s: %w", article.ID, err)
		}
		summary[model.CollectionArticles]++
	}
	for _, testimonial := range ds.Testimonials {
		if err := l.repos.Testimonial.Create(ctx, testimonial); err != nil {
			return summary, fmt.Errorf("insert testimonial %s: %w", testimonial.ID, err)
		}
		summary[model.CollectionTestimonials]++
	}
	for _, plan := range ds.Plans {
		if err := l.repos.Plan.Create(ctx, plan); err != nil {
			return summary, fmt.Errorf("insert plan %s: %w", plan.ID, err)
		}
		summary[model.CollectionPlans]++
	}

	for _, coll := range SeededCollections {
		l.logger.Info("Collection seeded", zap.String("collection", coll), zap.Int("inserted", summary[coll]))
	}
	return summary, nil
}
