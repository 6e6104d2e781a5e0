// internal/domain/models/article.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is a published piece of long-form content.
//
// Ownership is recorded redundantly under both the author* and user*
// naming conventions because older documents carry one or the other;
// both pairs are stamped at creation and both are probed by the
// ownership policy.
type Article struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Content          string             `bson:"content" json:"content"`
	CoverImage       string             `bson:"coverImage" json:"coverImage"`
	Category         string             `bson:"category" json:"category"`

	AuthorEmail string `bson:"authorEmail" json:"authorEmail"`
	AuthorID    string `bson:"authorId" json:"authorId"`
	UserEmail   string `bson:"userEmail" json:"userEmail"`
	UserID      string `bson:"userId" json:"userId"`
	AuthorName  string `bson:"authorName" json:"authorName"`
	AuthorImage string `bson:"authorImage" json:"authorImage"`

	PublishDate time.Time `bson:"publishDate" json:"publishDate"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnerRefs lists the article's ownership fields in convention order.
func (a Article) OwnerRefs() []OwnerRef {
	return []OwnerRef{
		{Email: a.UserEmail, SubjectID: a.UserID},
		{Email: a.AuthorEmail, SubjectID: a.AuthorID},
	}
}
