package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "zip2mp/pkg/http"
	"zip2mp/pkg/logger"
)

type HealthResponse struct {
	Status             string   `json:"status"`
	SupportedCountries []string `json:"supported_countries"`
}

type HealthHandler struct {
	log *logger.Logger
}

func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{log: log}
}

// Health reports liveness. The service holds no connections of its own, so
// there is no separate readiness probe.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:             "healthy",
		SupportedCountries: []string{"CA", "US"},
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/health", h.Health)
}
