package compute_estimate

import (
	"errors"
	"net/http"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	computeEstimate "github.com/m04kA/TD-WeddingService/internal/usecase/compute_estimate"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPlanType    = "planType must be streamlined or custom"
)

type Handler struct {
	useCase ComputeEstimateUseCase
	logger  Logger
}

func NewHandler(useCase ComputeEstimateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/estimates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ComputeEstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /estimates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, computeEstimate.ErrInvalidPlanType):
			h.logger.Warn("POST /estimates - Invalid plan type: %q", req.PlanType)
			handlers.RespondBadRequest(w, msgInvalidPlanType)

		default:
			h.logger.Error("POST /estimates - Failed to compute estimate: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /estimates - Estimate computed: plan=%s, total=%d", result.PlanType, result.Estimate.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
