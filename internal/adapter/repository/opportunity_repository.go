package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/workhoops/workhoops-api/internal/adapter/mapper"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OpportunityRepositoryImpl struct {
	coll *mongo.Collection
}

func NewOpportunityRepository(db *mongo.Database) repository.OpportunityRepository {
	return &OpportunityRepositoryImpl{coll: db.Collection(model.CollectionOpportunities)}
}

// opportunityFilter translates a list filter into a query document.
// Ubicacion matches as a case-insensitive literal substring.
func opportunityFilter(f dto.OpportunityFilter) bson.M {
	filter := bson.M{}
	if f.Tipo != "" {
		filter["tipo"] = string(f.Tipo)
	}
	if f.Nivel != "" {
		filter["nivel"] = string(f.Nivel)
	}
	if f.Ubicacion != "" {
		filter["ubicacion"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Ubicacion), Options: "i"}
	}
	if f.Estado != "" {
		filter["estado"] = string(f.Estado)
	}
	return filter
}

// textSearchFilter matches documents through the collection's text index.
func textSearchFilter(query string) bson.M {
	return bson.M{"$text": bson.M{"$search": query}}
}

func pageOptions(page entity.Page) *options.FindOptions {
	return options.Find().SetSkip(int64(page.Offset)).SetLimit(int64(page.Limit))
}

func (r *OpportunityRepositoryImpl) List(ctx context.Context, filter dto.OpportunityFilter) ([]*entity.Opportunity, error) {
	var docs []model.OpportunityDocument
	if err := findAll(ctx, r.coll, opportunityFilter(filter), &docs, pageOptions(filter.Page)); err != nil {
		return nil, err
	}
	return mapper.OpportunitiesFromDocuments(docs), nil
}

func (r *OpportunityRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	var doc model.OpportunityDocument
	if err := findOne(ctx, r.coll, bson.M{"id": id}, &doc); err != nil {
		return nil, err
	}
	return mapper.OpportunityFromDocument(&doc), nil
}

func (r *OpportunityRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Opportunity, error) {
	var doc model.OpportunityDocument
	if err := findOne(ctx, r.coll, bson.M{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	return mapper.OpportunityFromDocument(&doc), nil
}

func (r *OpportunityRepositoryImpl) Create(ctx context.Context, opp *entity.Opportunity) error {
	_, err := r.coll.InsertOne(ctx, mapper.OpportunityToDocument(opp))
	return err
}

func (r *OpportunityRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entity.OpportunityStatus) (*entity.Opportunity, error) {
	var doc model.OpportunityDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"estado": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.OpportunityFromDocument(&doc), nil
}

func (r *OpportunityRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]*entity.Opportunity, error) {
	filter := textSearchFilter(query)
	filter["estado"] = string(entity.OpportunityStatusPublicada)

	var docs []model.OpportunityDocument
	if err := findAll(ctx, r.coll, filter, &docs, options.Find().SetLimit(int64(limit))); err != nil {
		return nil, err
	}
	return mapper.OpportunitiesFromDocuments(docs), nil
}
