// internal/app/features/articles/create.go
package articles

import (
	"context"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// Create handles POST /articles. The article body may carry limited
// HTML; it is sanitized before storage. Ownership is stamped under
// both the author* and user* conventions so either probe matches.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	var req createArticleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	article := models.Article{
		Title:            req.Title,
		ShortDescription: sanitize.Text(req.ShortDescription),
		Content:          sanitize.ArticleHTML(req.Content),
		CoverImage:       req.CoverImage,
		Category:         req.Category,

		AuthorEmail: id.Email,
		AuthorID:    id.SubjectID,
		UserEmail:   id.Email,
		UserID:      id.SubjectID,
		AuthorName:  id.DisplayName,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Articles.Create(ctx, article)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Created(w, map[string]any{
		"success": true,
		"id":      created.ID.Hex(),
	})
}
