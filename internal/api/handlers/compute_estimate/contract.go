package compute_estimate

import (
	"context"

	computeEstimate "github.com/m04kA/TD-WeddingService/internal/usecase/compute_estimate"
)

type ComputeEstimateUseCase interface {
	Execute(ctx context.Context, req *computeEstimate.Request) (*computeEstimate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
