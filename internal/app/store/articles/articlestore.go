// internal/app/store/articles/articlestore.go
package articlestore

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
	DefaultCategory   = "General"
	DefaultCoverImage = "https://i.ibb.co/7QpKsCX/cover-placeholder.png"
	DefaultAuthorName = "Unknown User"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("articles")}
}

// Create inserts an article. Ownership is stamped by the caller from
// the resolved identity; Create fills defaults, the id, publish date
// and timestamps.
func (s *Store) Create(ctx context.Context, a models.Article) (models.Article, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if a.CoverImage == "" {
		a.CoverImage = DefaultCoverImage
	}
	if a.AuthorName == "" {
		a.AuthorName = DefaultAuthorName
	}
	if a.PublishDate.IsZero() {
		a.PublishDate = now
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Article{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Article, error) {
	var a models.Article
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Article{}, err
	}
	return a, nil
}

// List returns all articles sorted by publish date, newest first.
func (s *Store) List(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	articles := []models.Article{}
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateParams is the partial-merge update payload. Ownership fields
// are not representable here.
type UpdateParams struct {
	Title            *string
	ShortDescription *string
	Content          *string
	CoverImage       *string
	Category         *string
}

// Update applies a partial merge and stamps updatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p UpdateParams) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.ShortDescription != nil {
		set["shortDescription"] = *p.ShortDescription
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.CoverImage != nil {
		set["coverImage"] = *p.CoverImage
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes an article by id. Returns the number of documents
// deleted (0 or 1). Cascade cleanup of comments runs after this
// succeeds, driven by the caller.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
