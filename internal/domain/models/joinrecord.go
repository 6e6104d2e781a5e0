// internal/domain/models/joinrecord.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinRecord is the membership relationship between a user and a group.
//
// GroupID is a plain reference with no enforced foreign key; the join
// handler validates the group's existence by lookup. At most one record
// should exist per (groupId, userEmail) pair, enforced by a pre-insert
// existence check rather than a unique index, so a narrow concurrent
// race can produce duplicates.
type JoinRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID   primitive.ObjectID `bson:"groupId" json:"groupId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	UserID    string             `bson:"userId" json:"userId"`
	JoinedAt  time.Time          `bson:"joinedAt" json:"joinedAt"`
}
