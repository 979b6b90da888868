package compute_estimate

import (
	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
	computeEstimate "github.com/m04kA/TD-WeddingService/internal/usecase/compute_estimate"
)

// ComputeEstimateRequest HTTP request model
type ComputeEstimateRequest struct {
	PlanType   string                    `json:"planType"` // "streamlined" | "custom", пустое значение означает custom
	Selections *models.SelectionsRequest `json:"selections,omitempty"`
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	PlanType    string                      `json:"planType"`
	Estimate    models.EstimateResponse     `json:"estimate"`
	Selections  *models.SelectionsResponse  `json:"selections,omitempty"`
	Adjustments []models.AdjustmentResponse `json:"adjustments"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ComputeEstimateRequest) ToUseCaseRequest() *computeEstimate.Request {
	return &computeEstimate.Request{
		PlanType:   domain.PlanType(r.PlanType),
		Selections: r.Selections.ToDomain(),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *computeEstimate.Response) *EstimateResponse {
	return &EstimateResponse{
		PlanType:    string(resp.PlanType),
		Estimate:    models.FromDomainEstimate(resp.Estimate),
		Selections:  models.FromDomainSelections(resp.Selections),
		Adjustments: models.FromDomainAdjustments(resp.Adjustments),
	}
}
