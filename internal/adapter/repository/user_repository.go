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
)

type UserRepositoryImpl struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &UserRepositoryImpl{coll: db.Collection(model.CollectionUsers)}
}

func userFilter(f dto.UserFilter) bson.M {
	filter := bson.M{}
	if f.Rol != "" {
		filter["rol"] = string(f.Rol)
	}
	return filter
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter dto.UserFilter) ([]*entity.User, error) {
	var docs []model.UserDocument
	if err := findAll(ctx, r.coll, userFilter(filter), &docs, pageOptions(filter.Page)); err != nil {
		return nil, err
	}
	return mapper.UsersFromDocuments(docs), nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	_, err := r.coll.InsertOne(ctx, mapper.UserToDocument(user))
	return err
}
