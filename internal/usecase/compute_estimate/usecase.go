package compute_estimate

import (
	"context"
	"fmt"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// UseCase use case для расчета сметы
type UseCase struct {
	pricing PricingService
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricing PricingService, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		pricing: pricing,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute считает смету выбранного плана
// Ввод custom-плана никогда не отклоняется: некорректные значения нормализуются
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	plan := req.PlanType
	if plan == "" {
		plan = domain.PlanCustom
	}
	if !plan.IsValid() {
		uc.logger.Warn("ComputeEstimate: invalid plan type %q", req.PlanType)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlanType, req.PlanType)
	}

	resp := &Response{
		PlanType:    plan,
		Adjustments: []domain.Adjustment{},
	}

	switch plan {
	case domain.PlanStreamlined:
		resp.Estimate = uc.pricing.Streamlined()
	default:
		result := uc.pricing.Compute(req.Selections)
		resp.Estimate = result.Estimate
		resp.Selections = &result.Selections
		resp.Adjustments = result.Adjustments

		if len(result.Adjustments) > 0 {
			uc.logger.Info("ComputeEstimate: input normalized with %d adjustments", len(result.Adjustments))
		}
	}

	uc.metrics.IncEstimate(string(plan))

	uc.logger.Info("ComputeEstimate: plan=%s, total=%d, deposit=%d", plan, resp.Estimate.Total, resp.Estimate.Deposit)
	return resp, nil
}
