package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"parcelmarket/internal/entities"
	"parcelmarket/internal/service/user"
)

const collectionName = "users"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

func (r *Repository) Search(ctx context.Context, emailFragment string, limit int64) ([]entities.UserSummary, error) {
	filter := bson.M{
		"email": bson.M{
			"$regex":   regexp.QuoteMeta(emailFragment),
			"$options": "i",
		},
	}
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"email": 1, "role": 1, "created_at": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected users repository search error: %w", err)
	}

	var userModels []UserSummaryDB
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, fmt.Errorf("unexpected users repository search error: %w", err)
	}

	return ToSummaryDomainList(userModels), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserDB
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&userModel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected users repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) Create(ctx context.Context, userModify entities.UserModify, createdAt time.Time) (string, error) {
	userModel := FromDomainModify(&userModify, createdAt)

	result, err := r.collection.InsertOne(ctx, userModel)
	if err != nil {
		return "", fmt.Errorf("unexpected users repository create error: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected users repository create error: inserted id is not an object id")
	}

	return oid.Hex(), nil
}

func (r *Repository) UpdateRole(ctx context.Context, id string, role entities.UserRoleType) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, user.ErrInvalidUserID
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role.String()}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected users repository updaterole error: %w", err)
	}

	return result.ModifiedCount, nil
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role.String()}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected users repository updaterolebyemail error: %w", err)
	}

	return result.ModifiedCount, nil
}
