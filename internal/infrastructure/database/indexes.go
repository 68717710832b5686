package database

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionIndexes are the indexes ensured on one collection.
type CollectionIndexes struct {
	Collection string
	Models     []mongo.IndexModel
}

func plainIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName(field + "_idx"),
	}
}

func textIndex(name string, fields ...string) mongo.IndexModel {
	keys := make(bson.D, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: "text"})
	}
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

// IndexPlan returns the indexes of every collection. Every collection gets
// an id index; search and slug lookups get their own. Newsletter emails are
// indexed but not unique.
func IndexPlan() []CollectionIndexes {
	plan := make([]CollectionIndexes, 0, len(model.AllCollections))
	for _, coll := range model.AllCollections {
		models := []mongo.IndexModel{plainIndex("id")}

		switch coll {
		case model.CollectionOpportunities:
			models = append(models,
				textIndex("opportunities_text", "titulo", "descripcion"),
				plainIndex("slug"),
			)
		case model.CollectionArticles:
			models = append(models,
				textIndex("articles_text", "titulo", "cuerpo"),
				plainIndex("slug"),
			)
		case model.CollectionNewsletter:
			models = append(models, plainIndex("email"))
		}

		plan = append(plan, CollectionIndexes{Collection: coll, Models: models})
	}
	return plan
}

// EnsureIndexes creates the indexes of IndexPlan. Failures are logged and
// never stop startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) {
	for _, ci := range IndexPlan() {
		names, err := db.Collection(ci.Collection).Indexes().CreateMany(ctx, ci.Models)
		if err != nil {
			log.Warn("Failed to create indexes",
				zap.String("collection", ci.Collection),
				zap.Error(err))
			continue
		}
		log.Debug("Indexes ensured",
			zap.String("collection", ci.Collection),
			zap.Strings("indexes", names))
	}
}
