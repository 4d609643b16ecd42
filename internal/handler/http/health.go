package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// health handles GET /api/health. The envelope is always HTTP 200 so
// that orchestration layers can tell "process alive" from "dependency
// degraded": database connectivity is probed live on every call and
// reported inside the body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp := models.HealthResponse{OK: true, DBConnected: true}

	if err := h.db.HealthCheck(r.Context()); err != nil {
		log.Warn().Err(err).Msg("database health probe failed")
		resp.DBConnected = false
		resp.Error = err.Error()
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
