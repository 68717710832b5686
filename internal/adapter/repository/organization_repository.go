package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/adapter/mapper"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrganizationRepositoryImpl struct {
	coll *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) repository.OrganizationRepository {
	return &OrganizationRepositoryImpl{coll: db.Collection(model.CollectionOrganizations)}
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context) ([]*entity.Organization, error) {
	var docs []model.OrganizationDocument
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, err
	}
	return mapper.OrganizationsFromDocuments(docs), nil
}

func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	var doc model.OrganizationDocument
	if err := findOne(ctx, r.coll, bson.M{"id": id}, &doc); err != nil {
		return nil, err
	}
	return mapper.OrganizationFromDocument(&doc), nil
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *entity.Organization) error {
	_, err := r.coll.InsertOne(ctx, mapper.OrganizationToDocument(org))
	return err
}
