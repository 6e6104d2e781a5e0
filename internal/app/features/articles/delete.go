// internal/app/features/articles/delete.go
package articles

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/app/policy/ownership"
	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// Delete handles DELETE /articles/{id} (author only). Comments under
// the article are cascade-deleted after the primary delete succeeds;
// cascade failure is logged, not surfaced.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed article id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
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
		httpjson.Error(w, h.Log, apperr.New(apperr.KindForbidden, "only the author can delete this article"))
		return
	}

	n, err := h.Articles.Delete(ctx, oid)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if n == 0 {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "article not found"))
		return
	}

	if _, err := h.Comments.DeleteByArticle(ctx, oid); err != nil {
		h.Log.Error("cascade delete of comments failed",
			zap.String("articleId", oid.Hex()),
			zap.Error(err))
	}

	httpjson.OK(w, map[string]any{"success": true})
}
