package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler answers the liveness probe the deployment platform polls.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Ping serves /health-check/{action}. Only the ping action exists.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
