package parcels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ParcelDB struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title,omitempty"`
	SenderEmail     string             `bson:"sender_email,omitempty"`
	ReceiverName    string             `bson:"receiver_name,omitempty"`
	ReceiverAddress string             `bson:"receiver_address,omitempty"`
	District        string             `bson:"district,omitempty"`
	Weight          float64            `bson:"weight,omitempty"`
	PaymentStatus   string             `bson:"payment_status"`
	DeliveryStatus  string             `bson:"delivery_status"`
	AssignedRider   string             `bson:"assigned_rider,omitempty"`
	AssignedAt      *time.Time         `bson:"assigned_at,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
}
