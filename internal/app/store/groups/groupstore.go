// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// Default values stamped on create when the client omits them.
const (
	DefaultCategory     = "General"
	DefaultImage        = "https://i.ibb.co/2M7rtLk/placeholder-group.png"
	DefaultCreatorName  = "Anonymous"
	DefaultCreatorImage = "https://i.ibb.co/5GzXkwq/user.png"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// Create inserts a group. The caller stamps ownership from the
// resolved identity before calling; Create fills defaults, the id and
// timestamps.
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	if g.Category == "" {
		g.Category = DefaultCategory
	}
	if g.Image == "" {
		g.Image = DefaultImage
	}
	if g.CreatorName == "" {
		g.CreatorName = DefaultCreatorName
	}
	if g.CreatorImage == "" {
		g.CreatorImage = DefaultCreatorImage
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// List returns groups newest-first, optionally filtered to one
// creator's email.
func (s *Store) List(ctx context.Context, userEmail string) ([]models.Group, error) {
	filter := bson.M{}
	if userEmail != "" {
		filter["userEmail"] = userEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetByIDs batch-fetches groups for the given ids. Missing ids are
// simply absent from the result.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Group, error) {
	if len(ids) == 0 {
		return []models.Group{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateParams is the partial-merge update payload. Only non-nil
// fields are written; ownership fields are not representable here, so
// a client can never reassign a group's creator through an update.
type UpdateParams struct {
	GroupName     *string
	Description   *string
	Location      *string
	MaxMembers    *int
	Image         *string
	Category      *string
	FormattedDate *string
	FormatHour    *string
	Day           *string
}

// Update applies a partial merge and stamps updatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p UpdateParams) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.GroupName != nil {
		set["groupName"] = *p.GroupName
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.MaxMembers != nil {
		set["maxMembers"] = *p.MaxMembers
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.FormattedDate != nil {
		set["formattedDate"] = *p.FormattedDate
	}
	if p.FormatHour != nil {
		set["formatHour"] = *p.FormatHour
	}
	if p.Day != nil {
		set["day"] = *p.Day
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a group by id. Returns the number of documents
// deleted (0 or 1). Cascade cleanup of join records is the caller's
// responsibility and runs after this succeeds.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
