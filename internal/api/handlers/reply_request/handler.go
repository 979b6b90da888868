package reply_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	"github.com/m04kA/TD-WeddingService/internal/api/middleware"
	replyRequest "github.com/m04kA/TD-WeddingService/internal/usecase/reply_request"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingAdmin       = "admin identity is missing"
	msgNotFound           = "request not found"
	msgEmptyMessage       = "message must not be empty"
	msgMessageTooLong     = "message must be at most 5000 characters"
	msgInvalidInput       = "invalid reply"
)

type Handler struct {
	useCase ReplyRequestUseCase
	logger  Logger
}

func NewHandler(useCase ReplyRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/requests/{requestId}/replies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathRequestID(r)
	if err != nil {
		h.logger.Warn("POST /admin/requests/{id}/replies - Invalid request ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	// Администратор кладется в контекст middleware AdminAuth
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/requests/{id}/replies - Missing admin identity")
		handlers.RespondUnauthorized(w, msgMissingAdmin)
		return
	}

	var req ReplyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/requests/{id}/replies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(requestID, admin.Email))
	if err != nil {
		switch {
		case errors.Is(err, replyRequest.ErrRequestNotFound):
			h.logger.Warn("POST /admin/requests/{id}/replies - Request not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, replyRequest.ErrEmptyMessage):
			h.logger.Warn("POST /admin/requests/{id}/replies - Empty message: request_id=%s", requestID)
			handlers.RespondBadRequest(w, msgEmptyMessage)

		case errors.Is(err, replyRequest.ErrMessageTooLong):
			h.logger.Warn("POST /admin/requests/{id}/replies - Message too long: request_id=%s", requestID)
			handlers.RespondBadRequest(w, msgMessageTooLong)

		case errors.Is(err, replyRequest.ErrInvalidInput):
			h.logger.Warn("POST /admin/requests/{id}/replies - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/requests/{id}/replies - Failed to reply: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/requests/{id}/replies - Reply stored: request_id=%s, admin=%s, email_sent=%t",
		requestID, admin.Email, result.EmailSent)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
