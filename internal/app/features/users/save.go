// internal/app/features/users/save.go
package users

import (
	"context"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

type saveUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Save handles POST /save-user. The operation is an upsert keyed on
// email: a new profile is created on first sign-in, and name/photo are
// refreshed on every subsequent call. createdAt survives re-saves.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveUserRequest
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

	saved, err := h.Users.Upsert(ctx, req.Email, req.Name, req.Photo)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, map[string]any{
		"success": true,
		"id":      saved.ID.Hex(),
	})
}
