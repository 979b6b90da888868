package get_availability

import (
	"context"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// UseCase use case для получения статусов дат календаря
type UseCase struct {
	availability AvailabilityService
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute возвращает статус каждого дня периода
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Классифицируем каждый день
	classified := uc.availability.ClassifyRange(req.From, req.To)

	days := make([]Day, len(classified))
	bookable := 0
	for i, d := range classified {
		days[i] = Day{Date: d.Date, Status: d.Status}
		if d.Status.IsBookable() {
			bookable++
		}
		uc.metrics.IncAvailability(string(d.Status))
	}

	uc.logger.Info("GetAvailability: %s..%s, %d days, %d available",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), len(days), bookable)

	return &Response{
		From:     req.From,
		To:       req.To,
		Timezone: uc.availability.Calendar().Location.String(),
		Days:     days,
	}, nil
}
