package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/adapter/mapper"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArticleRepositoryImpl struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) repository.ArticleRepository {
	return &ArticleRepositoryImpl{coll: db.Collection(model.CollectionArticles)}
}

func articleFilter(f dto.ArticleFilter) bson.M {
	filter := bson.M{}
	if f.Categoria != "" {
		filter["categoria"] = f.Categoria
	}
	return filter
}

func (r *ArticleRepositoryImpl) List(ctx context.Context, filter dto.ArticleFilter) ([]*entity.Article, error) {
	var docs []model.ArticleDocument
	if err := findAll(ctx, r.coll, articleFilter(filter), &docs, pageOptions(filter.Page)); err != nil {
		return nil, err
	}
	return mapper.ArticlesFromDocuments(docs), nil
}

func (r *ArticleRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	var doc model.ArticleDocument
	if err := findOne(ctx, r.coll, bson.M{"id": id}, &doc); err != nil {
		return nil, err
	}
	return mapper.ArticleFromDocument(&doc), nil
}

func (r *ArticleRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var doc model.ArticleDocument
	if err := findOne(ctx, r.coll, bson.M{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	return mapper.ArticleFromDocument(&doc), nil
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *entity.Article) error {
	_, err := r.coll.InsertOne(ctx, mapper.ArticleToDocument(article))
	return err
}

func (r *ArticleRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]*entity.Article, error) {
	var docs []model.ArticleDocument
	if err := findAll(ctx, r.coll, textSearchFilter(query), &docs, options.Find().SetLimit(int64(limit))); err != nil {
		return nil, err
	}
	return mapper.ArticlesFromDocuments(docs), nil
}

type TestimonialRepositoryImpl struct {
	coll *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) repository.TestimonialRepository {
	return &TestimonialRepositoryImpl{coll: db.Collection(model.CollectionTestimonials)}
}

func (r *TestimonialRepositoryImpl) List(ctx context.Context) ([]*entity.Testimonial, error) {
	var docs []model.TestimonialDocument
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, err
	}
	return mapper.TestimonialsFromDocuments(docs), nil
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	_, err := r.coll.InsertOne(ctx, mapper.TestimonialToDocument(testimonial))
	return err
}

type PlanRepositoryImpl struct {
	coll *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &PlanRepositoryImpl{coll: db.Collection(model.CollectionPlans)}
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*entity.Plan, error) {
	var docs []model.PlanDocument
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, err
	}
	return mapper.PlansFromDocuments(docs), nil
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *entity.Plan) error {
	_, err := r.coll.InsertOne(ctx, mapper.PlanToDocument(plan))
	return err
}
