// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gatherhub/gatherhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Upsert records a login event for email. The first call inserts the
// user and stamps createdAt; every call refreshes name, photo,
// updatedAt and lastLoginAt. Idempotent with respect to repeated
// logins.
//
// Two concurrent first-logins can race the upsert against the unique
// email index; the loser gets a duplicate-key error and retries once,
// at which point the document exists and the update path wins.
func (s *Store) Upsert(ctx context.Context, email, name, photo string) (models.User, error) {
	u, err := s.upsert(ctx, email, name, photo)
	if err != nil && wafflemongo.IsDup(err) {
		u, err = s.upsert(ctx, email, name, photo)
	}
	return u, err
}

func (s *Store) upsert(ctx context.Context, email, name, photo string) (models.User, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":        name,
			"photo":       photo,
			"updatedAt":   now,
			"lastLoginAt": now,
		},
		"$setOnInsert": bson.M{
			"email":     email,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&u)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail fetches one user by the natural key.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Count returns the total number of registered users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
