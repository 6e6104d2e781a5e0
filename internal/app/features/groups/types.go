// internal/app/features/groups/types.go
package groups

// createGroupRequest carries the client-supplied group fields.
// Ownership fields are deliberately absent: whatever the client sends
// for them is dropped at decode time and restamped from the resolved
// identity.
type createGroupRequest struct {
	GroupName     string `json:"groupName"     validate:"required"`
	Description   string `json:"description"   validate:"required"`
	Location      string `json:"location"      validate:"required"`
	MaxMembers    int    `json:"maxMembers"    validate:"required,gt=0"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	FormattedDate string `json:"formattedDate"`
	FormatHour    string `json:"formatHour"`
	Day           string `json:"day"`
}

// updateGroupRequest is the partial-merge payload: only fields present
// in the JSON body are applied. Ownership fields are not representable.
type updateGroupRequest struct {
	GroupName     *string `json:"groupName"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	MaxMembers    *int    `json:"maxMembers"`
	Image         *string `json:"image"`
	Category      *string `json:"category"`
	FormattedDate *string `json:"formattedDate"`
	FormatHour    *string `json:"formatHour"`
	Day           *string `json:"day"`
}

type byIDsRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

type joinRequest struct {
	GroupID string `json:"groupId" validate:"required"`
}
