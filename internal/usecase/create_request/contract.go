package create_request

import (
	"context"
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/pricing"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error)
	CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.BookingRequest, error)
}

// AvailabilityService интерфейс классификатора дат
type AvailabilityService interface {
	Classify(date time.Time) domain.AvailabilityStatus
}

// PricingService интерфейс сервиса расчета смет
type PricingService interface {
	Compute(in domain.Selections) pricing.Result
	Streamlined() domain.Estimate
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncRequestSubmitted(plan string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
