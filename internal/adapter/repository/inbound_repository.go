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

type NewsletterRepositoryImpl struct {
	coll *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) repository.NewsletterRepository {
	return &NewsletterRepositoryImpl{coll: db.Collection(model.CollectionNewsletter)}
}

func (r *NewsletterRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	var doc model.NewsletterDocument
	if err := findOne(ctx, r.coll, bson.M{"email": email}, &doc); err != nil {
		return nil, err
	}
	return mapper.NewsletterFromDocument(&doc), nil
}

func (r *NewsletterRepositoryImpl) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	_, err := r.coll.InsertOne(ctx, mapper.NewsletterToDocument(sub))
	return err
}

type ContactRepositoryImpl struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) repository.ContactRepository {
	return &ContactRepositoryImpl{coll: db.Collection(model.CollectionContactForms)}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, form *entity.ContactForm) error {
	_, err := r.coll.InsertOne(ctx, mapper.ContactFormToDocument(form))
	return err
}
