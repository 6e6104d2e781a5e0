// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group represents an event listing (a "group" in the public API).
//
// NOTE:
//   - Members are not embedded on Group. Membership lives in the
//     joins collection, one JoinRecord per (group, user).
//   - Ownership fields (UserEmail, UserID, CreatorName, CreatorImage)
//     are stamped once at creation from the resolved identity and are
//     never writable through the update path.
type Group struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupName   string             `bson:"groupName" json:"groupName"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	MaxMembers  int                `bson:"maxMembers" json:"maxMembers"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`

	// Event scheduling fields. FormattedDate is a YYYY-MM-DD string and
	// doubles as the grouping key for the dashboard timeline.
	FormattedDate string `bson:"formattedDate" json:"formattedDate"`
	FormatHour    string `bson:"formatHour" json:"formatHour"`
	Day           string `bson:"day" json:"day"`

	UserEmail    string `bson:"userEmail" json:"userEmail"`
	UserID       string `bson:"userId" json:"userId"`
	CreatorName  string `bson:"creatorName" json:"creatorName"`
	CreatorImage string `bson:"creatorImage" json:"creatorImage"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnerRefs lists the group's ownership fields in convention order.
func (g Group) OwnerRefs() []OwnerRef {
	return []OwnerRef{{Email: g.UserEmail, SubjectID: g.UserID}}
}
