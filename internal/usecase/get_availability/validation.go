package get_availability

import (
	"fmt"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// validateRequest проверяет границы периода
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.From.After(req.To) {
		return ErrInvalidRange
	}

	// Количество дней включая обе границы
	days := int(req.To.Sub(req.From).Hours()/24) + 1
	if days > domain.MaxAvailabilityDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, domain.MaxAvailabilityDays)
	}

	return nil
}
