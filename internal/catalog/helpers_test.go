package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func newRouterForTest(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/services", h.ListServices)
	r.Get("/api/services/{serviceID}", h.GetService)
	return r
}
