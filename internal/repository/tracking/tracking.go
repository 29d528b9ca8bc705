package tracking

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"parcelmarket/internal/entities"
)

const collectionName = "trackings"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

func (r *Repository) Create(ctx context.Context, logModify entities.TrackingLogModify, at time.Time) (string, error) {
	logModel := FromDomainModify(&logModify, at)

	result, err := r.collection.InsertOne(ctx, logModel)
	if err != nil {
		return "", fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected tracking repository create error: inserted id is not an object id")
	}

	return oid.Hex(), nil
}
