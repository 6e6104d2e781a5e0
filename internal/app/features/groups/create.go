// internal/app/features/groups/create.go
package groups

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

// Create handles POST /createGroup. Ownership fields come from the
// resolved identity only; anything the client sent for them was
// already dropped at decode time.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.CurrentIdentity(r)

	var req createGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	group := models.Group{
		GroupName:     req.GroupName,
		Description:   sanitize.Text(req.Description),
		Location:      req.Location,
		MaxMembers:    req.MaxMembers,
		Image:         req.Image,
		Category:      req.Category,
		FormattedDate: req.FormattedDate,
		FormatHour:    req.FormatHour,
		Day:           req.Day,

		UserEmail:   id.Email,
		UserID:      id.SubjectID,
		CreatorName: id.DisplayName,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Groups.Create(ctx, group)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Created(w, map[string]any{
		"success": true,
		"id":      created.ID.Hex(),
	})
}
