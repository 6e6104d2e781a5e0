// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/app/store/queries/dashstats"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// Handler serves the admin dashboard aggregation endpoint.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// Register attaches the dashboard routes on the root router.
func Register(r chi.Router, h *Handler) {
	r.Get("/dashboard-stats", h.Stats)
}

// Stats handles GET /dashboard-stats: per-day signup and group
// creation counts merged into one ascending timeline.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rows, err := dashstats.Timeline(ctx, h.DB)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.OK(w, rows)
}
