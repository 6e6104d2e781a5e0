// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the user routes on the root router. save-user is
// called by clients right after sign-in, before they hold a usable
// token, so it stays public.
func Register(r chi.Router, h *Handler) {
	r.Post("/save-user", h.Save)
	r.Get("/totalUsers", h.Total)
}
