package riders

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
	"parcelmarket/internal/service/rider"
)

const (
	collectionName        = "riders"
	parcelsCollectionName = "parcels"
)

type Repository struct {
	collection *mongo.Collection
	parcels    *mongo.Collection
}

// New keeps a handle on the parcels collection too: releasing riders
// needs the set of delivered parcel ids.
func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
		parcels:    db.Collection(parcelsCollectionName),
	}
}

func (r *Repository) Create(ctx context.Context, riderModify entities.RiderModify, appliedAt time.Time) (string, error) {
	riderModel := FromDomainModify(&riderModify, appliedAt)

	result, err := r.collection.InsertOne(ctx, riderModel)
	if err != nil {
		return "", fmt.Errorf("unexpected riders repository create error: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected riders repository create error: inserted id is not an object id")
	}

	return oid.Hex(), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Rider, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, rider.ErrInvalidRiderID
	}

	var riderModel RiderDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&riderModel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, rider.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected riders repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": status.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected riders repository getbystatus error: %w", err)
	}

	var riderModels []RiderDB
	if err := cursor.All(ctx, &riderModels); err != nil {
		return nil, fmt.Errorf("unexpected riders repository getbystatus error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

func (r *Repository) GetAvailableByDistrict(ctx context.Context, district string) ([]entities.Rider, error) {
	filter := bson.M{
		"status":      entities.RiderActive.String(),
		"work_status": entities.RiderAvailable.String(),
		"district":    district,
	}
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected riders repository getavailablebydistrict error: %w", err)
	}

	var riderModels []RiderDB
	if err := cursor.All(ctx, &riderModels); err != nil {
		return nil, fmt.Errorf("unexpected riders repository getavailablebydistrict error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, rider.ErrInvalidRiderID
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected riders repository updatestatus error: %w", err)
	}

	return result.ModifiedCount, nil
}

func (r *Repository) MarkInDelivery(ctx context.Context, email, parcelID string) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"work_status":    entities.RiderInDelivery.String(),
			"current_parcel": parcelID,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected riders repository markindelivery error: %w", err)
	}

	return result.ModifiedCount, nil
}

// ReleaseDelivered frees every rider whose current parcel has already
// been delivered.
func (r *Repository) ReleaseDelivered(ctx context.Context) (int64, error) {
	deliveredIDs, err := r.parcels.Distinct(
		ctx,
		"_id",
		bson.M{"delivery_status": entities.DeliveryDelivered.String()},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected riders repository releasedelivered error: %w", err)
	}

	if len(deliveredIDs) == 0 {
		return 0, nil
	}

	hexIDs := make([]string, 0, len(deliveredIDs))
	for _, id := range deliveredIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			hexIDs = append(hexIDs, oid.Hex())
		}
	}

	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{
			"work_status":    entities.RiderInDelivery.String(),
			"current_parcel": bson.M{"$in": hexIDs},
		},
		bson.M{"$set": bson.M{
			"work_status":    entities.RiderAvailable.String(),
			"current_parcel": "",
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected riders repository releasedelivered error: %w", err)
	}

	return result.ModifiedCount, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, rider.ErrInvalidRiderID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("unexpected riders repository delete error: %w", err)
	}

	return result.DeletedCount, nil
}
