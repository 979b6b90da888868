package get_availability

import (
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// Request модель запроса статусов дат (границы включительно)
type Request struct {
	From time.Time
	To   time.Time
}

// Response модель ответа со статусом каждого дня
type Response struct {
	From     time.Time
	To       time.Time
	Timezone string
	Days     []Day
}

// Day статус одного дня
type Day struct {
	Date   time.Time
	Status domain.AvailabilityStatus
}
