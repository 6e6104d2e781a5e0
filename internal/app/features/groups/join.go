// internal/app/features/groups/join.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// Join handles POST /joinGroup {groupId}. The group reference is
// validated by lookup (there is no foreign key), and duplicate
// membership is caught by an existence check before insert.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	var req joinRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	gid, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed group id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Groups.GetByID(ctx, gid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "group not found"))
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	exists, err := h.Joins.Exists(ctx, gid, id.Email)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if exists {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindConflict, "already joined this group"))
		return
	}

	join, err := h.Joins.Create(ctx, models.JoinRecord{
		GroupID:   gid,
		UserEmail: id.Email,
		UserID:    id.SubjectID,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Created(w, map[string]any{
		"success": true,
		"id":      join.ID.Hex(),
	})
}
