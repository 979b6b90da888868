package get_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	"github.com/m04kA/TD-WeddingService/internal/service/requests"
)

const msgNotFound = "request not found"

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

// Handle GET /api/v1/admin/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathRequestID(r)
	if err != nil {
		h.logger.Warn("GET /admin/requests/{id} - Invalid request ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	request, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("GET /admin/requests/{id} - Request not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/requests/{id} - Failed to get request: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/requests/{id} - Request retrieved: request_id=%s, messages=%d",
		requestID, len(request.Messages))
	handlers.RespondJSON(w, http.StatusOK, request)
}
