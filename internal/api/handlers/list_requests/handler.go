package list_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	"github.com/m04kA/TD-WeddingService/internal/service/requests"
)

const (
	msgInvalidParams = "invalid query parameters"
	msgInvalidStatus = "status must be one of new, in_progress, awaiting_client, booked"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/requests
// Query params: status, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("status"), query.Get("limit"), query.Get("offset"))
	if err != nil {
		h.logger.Warn("GET /admin/requests - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("GET /admin/requests - Invalid status: %s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/requests - Failed to list requests: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/requests - Requests retrieved: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
