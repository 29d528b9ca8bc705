package parcels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"parcelmarket/internal/entities"
	"parcelmarket/internal/service/parcel"
)

const collectionName = "parcels"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	query := bson.M{}
	if filter.PaymentStatus != nil {
		query["payment_status"] = filter.PaymentStatus.String()
	}
	if filter.DeliveryStatus != nil {
		query["delivery_status"] = filter.DeliveryStatus.String()
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcels repository getall error: %w", err)
	}

	var parcelModels []ParcelDB
	if err := cursor.All(ctx, &parcelModels); err != nil {
		return nil, fmt.Errorf("unexpected parcels repository getall error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Parcel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, parcel.ErrInvalidParcelID
	}

	var parcelModel ParcelDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&parcelModel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcels repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Create(ctx context.Context, parcelModify entities.ParcelModify, createdAt time.Time) (string, error) {
	parcelModel := FromDomainModify(&parcelModify, createdAt)

	result, err := r.collection.InsertOne(ctx, parcelModel)
	if err != nil {
		return "", fmt.Errorf("unexpected parcels repository create error: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected parcels repository create error: inserted id is not an object id")
	}

	return oid.Hex(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, parcel.ErrInvalidParcelID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("unexpected parcels repository delete error: %w", err)
	}

	return result.DeletedCount, nil
}

func (r *Repository) Assign(ctx context.Context, parcelID, riderEmail string, assignedAt time.Time) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(parcelID)
	if err != nil {
		return 0, parcel.ErrInvalidParcelID
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"delivery_status": entities.DeliveryInTransit.String(),
			"assigned_rider":  riderEmail,
			"assigned_at":     assignedAt,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcels repository assign error: %w", err)
	}

	return result.ModifiedCount, nil
}

// MarkPaid is conditional on the parcel not being paid yet, so a
// second payment attempt modifies nothing.
func (r *Repository) MarkPaid(ctx context.Context, parcelID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(parcelID)
	if err != nil {
		return 0, parcel.ErrInvalidParcelID
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"_id":            oid,
			"payment_status": bson.M{"$ne": entities.ParcelPaid.String()},
		},
		bson.M{"$set": bson.M{"payment_status": entities.ParcelPaid.String()}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcels repository markpaid error: %w", err)
	}

	return result.ModifiedCount, nil
}
