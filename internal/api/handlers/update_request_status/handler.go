package update_request_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	"github.com/m04kA/TD-WeddingService/internal/service/requests"
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "status must be one of new, in_progress, awaiting_client, booked"
	msgNotFound           = "request not found"
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

// Handle PATCH /api/v1/admin/requests/{requestId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathRequestID(r)
	if err != nil {
		h.logger.Warn("PATCH /admin/requests/{id}/status - Invalid request ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/requests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	request, err := h.service.UpdateStatus(r.Context(), requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/requests/{id}/status - Invalid status: request_id=%s, status=%q", requestID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("PATCH /admin/requests/{id}/status - Request not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/requests/{id}/status - Failed to update status: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/requests/{id}/status - Status updated: request_id=%s, status=%s", requestID, request.Status)
	handlers.RespondJSON(w, http.StatusOK, request)
}
