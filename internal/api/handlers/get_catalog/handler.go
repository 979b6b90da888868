package get_catalog

import (
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()
	response := FromDomain(catalog, h.service.DefaultSelections(), h.service.Streamlined())

	h.logger.Info("GET /catalog - Catalog retrieved: categories=%d", len(response.Categories))
	handlers.RespondJSON(w, http.StatusOK, response)
}
