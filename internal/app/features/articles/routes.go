// internal/app/features/articles/routes.go
package articles

import (
	"github.com/go-chi/chi/v5"

	"github.com/gatherhub/gatherhub/internal/app/system/auth"
)

// Register attaches the articles and comments routes on the root
// router.
func Register(r chi.Router, h *Handler, res *auth.Resolver) {
	// Public reads.
	r.Get("/articles", h.List)
	r.Get("/articles/{id}", h.GetOne)
	r.Get("/articles/{id}/comments", h.ListComments)

	// Mutations require a resolved identity. Comment creation is
	// authenticated too: the public variant that trusted a
	// client-supplied author email is superseded.
	r.Group(func(pr chi.Router) {
		pr.Use(res.RequireIdentity)

		pr.Post("/articles", h.Create)
		pr.Put("/articles/{id}", h.Update)
		pr.Delete("/articles/{id}", h.Delete)

		pr.Post("/articles/{id}/comments", h.CreateComment)
		pr.Delete("/articles/{id}/comments/{cid}", h.DeleteComment)
	})
}
