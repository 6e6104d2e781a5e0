// internal/app/features/groups/update.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatherhub/gatherhub/internal/app/policy/ownership"
	groupstore "github.com/gatherhub/gatherhub/internal/app/store/groups"
	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/auth"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// Update handles PUT /groups/{id} (owner only, partial merge).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed group id"))
		return
	}

	var req updateGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Groups.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "group not found"))
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	if !ownership.IsOwner(existing.OwnerRefs(), id) {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindForbidden, "only the group creator can modify this group"))
		return
	}

	if req.Description != nil {
		clean := sanitize.Text(*req.Description)
		req.Description = &clean
	}

	err = h.Groups.Update(ctx, oid, groupstore.UpdateParams{
		GroupName:     req.GroupName,
		Description:   req.Description,
		Location:      req.Location,
		MaxMembers:    req.MaxMembers,
		Image:         req.Image,
		Category:      req.Category,
		FormattedDate: req.FormattedDate,
		FormatHour:    req.FormatHour,
		Day:           req.Day,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, map[string]any{"success": true})
}
