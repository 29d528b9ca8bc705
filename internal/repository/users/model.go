package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDB struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// UserSummaryDB is the search projection: email, role, created_at.
type UserSummaryDB struct {
	Email     string    `bson:"email"`
	Role      string    `bson:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}
