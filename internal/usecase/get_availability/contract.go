package get_availability

import (
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// AvailabilityService интерфейс классификатора дат
type AvailabilityService interface {
	ClassifyRange(from, to time.Time) []domain.DayAvailability
	Calendar() domain.Calendar
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncAvailability(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
