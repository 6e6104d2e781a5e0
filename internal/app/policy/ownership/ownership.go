// internal/app/policy/ownership/ownership.go
package ownership

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// IsOwner reports whether the identity created the resource.
//
// A resource exposes its ownership fields as an ordered list of
// (email, subject id) pairs, one pair per naming convention the
// resource kind has carried over time (user*, creator*, author*).
// Emails are compared across every pair first, then subject ids, and
// the first match wins. Blank fields are skipped, so documents that
// predate a convention simply don't participate in that check.
func IsOwner(refs []models.OwnerRef, id models.Identity) bool {
	for _, ref := range refs {
		if ref.Email != "" && id.Email != "" && ref.Email == id.Email {
			return true
		}
	}
	for _, ref := range refs {
		if ref.SubjectID != "" && id.SubjectID != "" && ref.SubjectID == id.SubjectID {
			return true
		}
	}
	return false
}

// CanDeleteComment decides comment-deletion authorization: the comment
// author may delete their own comment, and the parent article's author
// may moderate comments on their article. The article is loaded through
// the callback only when the primary check fails, which avoids the
// extra read on the common path.
func CanDeleteComment(ctx context.Context, c models.Comment, id models.Identity, loadArticle func(context.Context) (models.Article, error)) (bool, error) {
	if IsOwner(c.OwnerRefs(), id) {
		return true, nil
	}
	article, err := loadArticle(ctx)
	if err != nil {
		return false, err
	}
	return IsOwner(article.OwnerRefs(), id), nil
}
