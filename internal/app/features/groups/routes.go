// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"

	"github.com/gatherhub/gatherhub/internal/app/system/auth"
)

// Register attaches the groups routes. The paths are flat legacy paths
// shared with the front end, so they are registered on the root router
// rather than mounted under a prefix.
func Register(r chi.Router, h *Handler, res *auth.Resolver) {
	// Public reads.
	r.Get("/groups", h.List)
	r.Get("/groups/{id}", h.GetOne)
	r.Post("/groupsByIds", h.ByIDs)
	r.Get("/user-joined-groups", h.UserJoinedGroups)

	// Mutations require a resolved identity.
	r.Group(func(pr chi.Router) {
		pr.Use(res.RequireIdentity)

		pr.Post("/createGroup", h.Create)
		pr.Put("/groups/{id}", h.Update)
		pr.Delete("/groups/{id}", h.Delete)

		pr.Post("/joinGroup", h.Join)
		pr.Post("/leaveGroup", h.Leave)
	})
}
