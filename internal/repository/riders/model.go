package riders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RiderDB struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name,omitempty"`
	Email         string             `bson:"email,omitempty"`
	Phone         string             `bson:"phone,omitempty"`
	District      string             `bson:"district,omitempty"`
	Status        string             `bson:"status"`
	WorkStatus    string             `bson:"work_status"`
	CurrentParcel string             `bson:"current_parcel,omitempty"`
	AppliedAt     time.Time          `bson:"applied_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
