package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/app/system/dbguard"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Guard *dbguard.Guard
	Log   *zap.Logger
}

// NewHandler constructs a health Handler with the connection guard and logger.
func NewHandler(guard *dbguard.Guard, logger *zap.Logger) *Handler {
	return &Handler{
		Guard: guard,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	if err := h.Guard.Ping(r.Context()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
