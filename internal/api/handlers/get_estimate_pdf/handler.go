package get_estimate_pdf

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// Handle GET /api/v1/admin/requests/{requestId}/estimate.pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathRequestID(r)
	if err != nil {
		h.logger.Warn("GET /admin/requests/{id}/estimate.pdf - Invalid request ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	doc, err := h.service.EstimatePDF(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("GET /admin/requests/{id}/estimate.pdf - Request not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/requests/{id}/estimate.pdf - Failed to render estimate: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tiny-diner-estimate-%s.pdf"`, requestID))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.logger.Warn("GET /admin/requests/{id}/estimate.pdf - Failed to write response: request_id=%s, error=%v", requestID, err)
		return
	}

	h.logger.Info("GET /admin/requests/{id}/estimate.pdf - Estimate sent: request_id=%s, bytes=%d", requestID, len(doc))
}
