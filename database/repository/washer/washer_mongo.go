package washerRepo

import (
	"context"
	"fmt"

	"washly/config"
	"washly/database"
	"washly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoWasherRepo struct {
	coll *mongo.Collection
}

// NewMongoWasherRepo returns a WasherRepository backed by the washers collection.
func NewMongoWasherRepo() WasherRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("washers")
	return &mongoWasherRepo{coll: coll}
}

// GetAll returns the full washer catalogue.
func (r *mongoWasherRepo) GetAll(ctx context.Context) ([]models.Washer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query washers: %w", err)
	}
	defer cursor.Close(ctx)

	var washers []models.Washer
	if err := cursor.All(ctx, &washers); err != nil {
		return nil, fmt.Errorf("failed to decode washers: %w", err)
	}
	return washers, nil
}

// GetByID returns a single washer by its ID.
func (r *mongoWasherRepo) GetByID(ctx context.Context, id string) (*models.Washer, error) {
	var washer models.Washer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&washer); err != nil {
		return nil, fmt.Errorf("washer %s not found: %w", id, err)
	}
	return &washer, nil
}

// Seed inserts the fixture catalogue when the collection is empty.
func (r *mongoWasherRepo) Seed(ctx context.Context) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count washers: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(CatalogueFixtures))
	for _, w := range CatalogueFixtures {
		docs = append(docs, w)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed washer catalogue: %w", err)
	}
	return nil
}
