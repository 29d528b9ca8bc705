package tracking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackingLogDB struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	TrackingID string             `bson:"tracking_id,omitempty"`
	ParcelID   string             `bson:"parcel_id,omitempty"`
	Status     string             `bson:"status,omitempty"`
	Message    string             `bson:"message,omitempty"`
	Time       time.Time          `bson:"time"`
	UpdatedBy  string             `bson:"updated_by,omitempty"`
}
