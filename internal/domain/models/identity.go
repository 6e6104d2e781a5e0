// internal/domain/models/identity.go
package models

import "strings"

// Identity is the request-scoped result of credential resolution.
// It is attached to the request context by the auth middleware and
// discarded when the request completes; it is never persisted.
type Identity struct {
	SubjectID   string
	Email       string
	DisplayName string
}

// OwnerRef is one (email, subject id) pair recorded on a resource.
// Resources expose their ownership fields as an ordered list of refs
// so the ownership policy can probe every naming convention a resource
// kind has historically used (user*, creator*, author*).
type OwnerRef struct {
	Email     string
	SubjectID string
}

// EmailLocalPart returns the part of an email address before the '@',
// used as a display-name default when no name claim is available.
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
