// internal/app/store/joins/joinstore.go
package joinstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gatherhub/gatherhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("joins")}
}

// Exists reports whether a join record exists for (groupID, email).
// This is the pre-insert uniqueness check; there is no unique index
// backing it, so two concurrent joins can still race past it (an
// accepted window that only skews membership counts).
func (s *Store) Exists(ctx context.Context, groupID primitive.ObjectID, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"groupId": groupID, "userEmail": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a join record, stamping the id and join time.
func (s *Store) Create(ctx context.Context, j models.JoinRecord) (models.JoinRecord, error) {
	j.ID = primitive.NewObjectID()
	j.JoinedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, j); err != nil {
		return models.JoinRecord{}, err
	}
	return j, nil
}

// DeleteOwn removes the join record for (groupID, email). Scoping the
// delete filter to the caller's own email is what guarantees a user
// can never remove another member, regardless of what the request
// claims. Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteOwn(ctx context.Context, groupID primitive.ObjectID, email string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"groupId": groupID, "userEmail": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByGroup removes all join records for a group (cascade on group
// delete). Returns the number of documents deleted.
func (s *Store) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"groupId": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByEmail returns a user's join records, newest first.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.JoinRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	joins := []models.JoinRecord{}
	if err := cur.All(ctx, &joins); err != nil {
		return nil, err
	}
	return joins, nil
}

// CountByGroup returns the number of members joined to a group.
func (s *Store) CountByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"groupId": groupID})
}
