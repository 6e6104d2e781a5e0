package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// UniqueEmail returns an email address no other fixture in this run uses.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@test.local", prefix, uuid.NewString()[:8])
}

// TestIdentity builds an identity for handler tests.
func TestIdentity(email string) models.Identity {
	return models.Identity{
		SubjectID:   uuid.NewString(),
		Email:       email,
		DisplayName: models.EmailLocalPart(email),
	}
}

// CreateGroup inserts a group owned by ownerEmail/ownerID.
func (f *Fixtures) CreateGroup(ctx context.Context, name, ownerEmail, ownerID string) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Group{
		ID:          primitive.NewObjectID(),
		GroupName:   name,
		Description: "test group",
		Category:    "General",
		MaxMembers:  25,
		UserEmail:   ownerEmail,
		UserID:      ownerID,
		CreatorName: models.EmailLocalPart(ownerEmail),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreateJoin inserts a join record tying email to the group.
func (f *Fixtures) CreateJoin(ctx context.Context, groupID primitive.ObjectID, email, uid string) models.JoinRecord {
	f.t.Helper()

	j := models.JoinRecord{
		ID:        primitive.NewObjectID(),
		GroupID:   groupID,
		UserEmail: email,
		UserID:    uid,
		JoinedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("joins").InsertOne(ctx, j); err != nil {
		f.t.Fatalf("failed to create test join: %v", err)
	}
	return j
}

// CreateArticle inserts an article owned by authorEmail/authorID under
// both ownership conventions, matching what the create handler stamps.
func (f *Fixtures) CreateArticle(ctx context.Context, title, authorEmail, authorID string) models.Article {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Article{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Content:     "<p>test content</p>",
		Category:    "General",
		AuthorEmail: authorEmail,
		AuthorID:    authorID,
		UserEmail:   authorEmail,
		UserID:      authorID,
		AuthorName:  models.EmailLocalPart(authorEmail),
		PublishDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("articles").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test article: %v", err)
	}
	return a
}

// CreateComment inserts a comment on the article by authorEmail/authorID.
func (f *Fixtures) CreateComment(ctx context.Context, articleID primitive.ObjectID, text, authorEmail, authorID string) models.Comment {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Comment{
		ID:          primitive.NewObjectID(),
		ArticleID:   articleID,
		Text:        text,
		AuthorName:  models.EmailLocalPart(authorEmail),
		AuthorEmail: authorEmail,
		AuthorID:    authorID,
		Timestamp:   now,
		CreatedAt:   now,
	}

	if _, err := f.db.Collection("comments").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return c
}

// CreateUser inserts a user profile.
func (f *Fixtures) CreateUser(ctx context.Context, email, name string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:          primitive.NewObjectID(),
		Email:       email,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastLoginAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}
