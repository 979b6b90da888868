package create_request

import (
	"errors"
	"fmt"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

var (
	// ErrDateNotAvailable возвращается, когда на дату нельзя отправить заявку
	ErrDateNotAvailable = errors.New("create_request: date is not available")

	// ErrInvalidPlanType возвращается при неизвестном типе плана
	ErrInvalidPlanType = errors.New("create_request: invalid plan type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_request: internal error")
)

// DateUnavailableError сообщает статус даты, на которую нельзя подать заявку
// errors.Is(err, ErrDateNotAvailable) возвращает true
type DateUnavailableError struct {
	Status domain.AvailabilityStatus
}

func (e *DateUnavailableError) Error() string {
	return fmt.Sprintf("%s: status %s", ErrDateNotAvailable.Error(), e.Status)
}

func (e *DateUnavailableError) Unwrap() error {
	return ErrDateNotAvailable
}
