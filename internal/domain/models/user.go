// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record upserted on every login event.
//
// Email is the natural key (unique index). CreatedAt is written only on
// the first insert; later logins refresh name, photo, UpdatedAt and
// LastLoginAt. Users are never deleted by this system.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
	Photo string             `bson:"photo" json:"photo"`

	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
	LastLoginAt time.Time `bson:"lastLoginAt" json:"lastLoginAt"`
}
