package payments

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"parcelmarket/internal/entities"
)

const collectionName = "payments"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

func (r *Repository) Create(ctx context.Context, paymentModify entities.PaymentModify, paidAt time.Time) (string, error) {
	paymentModel := FromDomainModify(&paymentModify, paidAt)

	result, err := r.collection.InsertOne(ctx, paymentModel)
	if err != nil {
		return "", fmt.Errorf("unexpected payments repository create error: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected payments repository create error: inserted id is not an object id")
	}

	return oid.Hex(), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paid_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected payments repository getbyemail error: %w", err)
	}

	var paymentModels []PaymentDB
	if err := cursor.All(ctx, &paymentModels); err != nil {
		return nil, fmt.Errorf("unexpected payments repository getbyemail error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}
