// internal/app/features/articles/comments.go
package articles

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatherhub/gatherhub/internal/app/policy/ownership"
	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// ListComments handles GET /articles/{id}/comments, newest first.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed article id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.ListByArticle(ctx, oid)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, comments)
}

// CreateComment handles POST /articles/{id}/comments. The author
// fields come from the authenticated identity; client-supplied author
// fields are dropped at decode time. The parent article must exist.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed article id"))
		return
	}

	var req createCommentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Articles.GetByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "article not found"))
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	comment := models.Comment{
		ArticleID: oid,
		Text:      sanitize.Text(req.Text),

		AuthorName:  id.DisplayName,
		AuthorEmail: id.Email,
		AuthorID:    id.SubjectID,
	}

	created, err := h.Comments.Create(ctx, comment)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Created(w, map[string]any{
		"success": true,
		"id":      created.ID.Hex(),
	})
}

// DeleteComment handles DELETE /articles/{id}/comments/{cid}. Allowed
// for the comment author, or for the article author moderating their
// own article. The article is only loaded when the first check fails.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	articleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed article id"))
		return
	}
	commentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "cid"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed comment id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comment, err := h.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "comment not found"))
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	// The comment must belong to the article named in the URL. Without
	// this check the moderation rule below would consult the URL's
	// article, letting anyone who owns an article cite it to delete
	// comments parented elsewhere.
	if comment.ArticleID != articleID {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "comment not found"))
		return
	}

	allowed, err := ownership.CanDeleteComment(ctx, comment, id, func(ctx context.Context) (models.Article, error) {
		return h.Articles.GetByID(ctx, comment.ArticleID)
	})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, h.Log, err)
		return
	}
	if !allowed {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindForbidden, "not allowed to delete this comment"))
		return
	}

	n, err := h.Comments.Delete(ctx, commentID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if n == 0 {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "comment not found"))
		return
	}
	httpjson.OK(w, map[string]any{"success": true})
}
