// internal/app/features/articles/update.go
package articles

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatherhub/gatherhub/internal/app/policy/ownership"
	articlestore "github.com/gatherhub/gatherhub/internal/app/store/articles"
	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// Update handles PUT /articles/{id} (author only, partial merge).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed article id"))
		return
	}

	var req updateArticleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Articles.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "article not found"))
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	if !ownership.IsOwner(existing.OwnerRefs(), id) {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindForbidden, "only the author can modify this article"))
		return
	}

	if req.Content != nil {
		clean := sanitize.ArticleHTML(*req.Content)
		req.Content = &clean
	}
	if req.ShortDescription != nil {
		clean := sanitize.Text(*req.ShortDescription)
		req.ShortDescription = &clean
	}

	err = h.Articles.Update(ctx, oid, articlestore.UpdateParams{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		CoverImage:       req.CoverImage,
		Category:         req.Category,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, map[string]any{"success": true})
}
