package create_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	createRequest "github.com/m04kA/TD-WeddingService/internal/usecase/create_request"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid eventDate, expected YYYY-MM-DD"
	msgDateNotAvailable   = "the selected date is not available"
	msgInvalidPlanType    = "planType must be streamlined or custom"
	msgInvalidInput       = "please check your contact details and notes"
)

type Handler struct {
	useCase CreateRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests
// Header Idempotency-Key (опционально): повтор с тем же ключом возвращает уже созданную заявку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		h.logger.Warn("POST /requests - Failed to parse event date %q: %v", req.EventDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unavailable *createRequest.DateUnavailableError
		switch {
		case errors.As(err, &unavailable):
			h.logger.Warn("POST /requests - Date not available: date=%s, status=%s", req.EventDate, unavailable.Status)
			handlers.RespondJSON(w, http.StatusConflict, DateUnavailableResponse{
				Code:    http.StatusConflict,
				Message: msgDateNotAvailable,
				Status:  string(unavailable.Status),
			})

		case errors.Is(err, createRequest.ErrDateNotAvailable):
			h.logger.Warn("POST /requests - Date not available: date=%s", req.EventDate)
			handlers.RespondConflict(w, msgDateNotAvailable)

		case errors.Is(err, createRequest.ErrInvalidPlanType):
			h.logger.Warn("POST /requests - Invalid plan type: %q", req.PlanType)
			handlers.RespondBadRequest(w, msgInvalidPlanType)

		case errors.Is(err, createRequest.ErrInvalidInput):
			h.logger.Warn("POST /requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /requests - Failed to create request: date=%s, error=%v", req.EventDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	h.logger.Info("POST /requests - Request stored: request_id=%s, plan=%s, replayed=%t",
		result.Request.ID, result.Request.PlanType, result.Replayed)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
