package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

// Handler serves the service catalog over HTTP.
type Handler struct {
	catalog *Catalog
	logger  *logging.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(catalog *Catalog, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{catalog: catalog, logger: logger}
}

// ListServices handles GET /api/services requests.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"services": h.catalog.List(),
	})
}

// GetService handles GET /api/services/{serviceID} requests.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "serviceID")

	svc, err := h.catalog.Get(id)
	if err != nil {
		h.logger.Debug("service lookup failed", "service_id", id)
		http.Error(w, "service not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(svc)
}
