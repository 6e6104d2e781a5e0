// internal/app/features/groups/list.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// List handles GET /groups[?userEmail=], newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.List(ctx, r.URL.Query().Get("userEmail"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, groups)
}

// GetOne handles GET /groups/{id}.
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "malformed group id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	group, err := h.Groups.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, h.Log, apperr.New(apperr.KindNotFound, "group not found"))
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, group)
}

// ByIDs handles POST /groupsByIds {ids:[...]}: batch fetch by id list.
// Malformed ids fail the whole request rather than being silently
// skipped.
func (h *Handler) ByIDs(w http.ResponseWriter, r *http.Request) {
	var req byIDsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	oids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, id := range req.IDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			httpjson.Error(w, h.Log, apperr.Newf(apperr.KindValidation, "malformed group id %q", id))
			return
		}
		oids = append(oids, oid)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.GetByIDs(ctx, oids)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, groups)
}

// UserJoinedGroups handles GET /user-joined-groups?email=: the groups
// a user has joined, resolved through their join records.
func (h *Handler) UserJoinedGroups(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Error(w, h.Log, apperr.New(apperr.KindValidation, "email query parameter is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	joins, err := h.Joins.ListByEmail(ctx, email)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(joins))
	for _, j := range joins {
		ids = append(ids, j.GroupID)
	}
	groups, err := h.Groups.GetByIDs(ctx, ids)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}
	httpjson.OK(w, groups)
}
