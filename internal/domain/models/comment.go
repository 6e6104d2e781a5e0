// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reader comment attached to an article.
//
// ArticleID is an unenforced reference; comments are cascade-deleted
// when their parent article is deleted. Author fields come from the
// resolved identity, never from the client payload.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArticleID primitive.ObjectID `bson:"articleId" json:"articleId"`
	Text      string             `bson:"text" json:"text"`

	AuthorName  string `bson:"authorName" json:"authorName"`
	AuthorEmail string `bson:"authorEmail" json:"authorEmail"`
	AuthorID    string `bson:"authorId" json:"authorId"`
	AuthorImage string `bson:"authorImage" json:"authorImage"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// OwnerRefs lists the comment's ownership fields.
func (c Comment) OwnerRefs() []OwnerRef {
	return []OwnerRef{{Email: c.AuthorEmail, SubjectID: c.AuthorID}}
}
