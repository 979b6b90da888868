package compute_estimate

import (
	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/pricing"
)

// PricingService интерфейс сервиса расчета смет
type PricingService interface {
	Compute(in domain.Selections) pricing.Result
	Streamlined() domain.Estimate
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncEstimate(plan string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
