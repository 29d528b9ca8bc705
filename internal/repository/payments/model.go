package payments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentDB struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ParcelID      string             `bson:"parcelId,omitempty"`
	Email         string             `bson:"email,omitempty"`
	Amount        int64              `bson:"amount,omitempty"`
	PaymentMethod string             `bson:"paymentMethod,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty"`
	PaidAt        time.Time          `bson:"paid_at"`
	PaidAtString  string             `bson:"paid_at_string"`
}
