package create_request

import (
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	EventDate      time.Time          // Дата свадьбы (без времени)
	PlanType       domain.PlanType    // streamlined или custom
	Client         domain.Client      // Контакты пары
	Selections     *domain.Selections // Ввод формы custom-плана
	Notes          *string            // Пожелания пары (опционально)
	UID            *string            // Firebase uid гостя (опционально)
	IdempotencyKey *string            // Ключ из заголовка Idempotency-Key (опционально)
}

// Response модель ответа с сохраненной заявкой
type Response struct {
	Request     *domain.BookingRequest
	Adjustments []domain.Adjustment
	Replayed    bool // true, если заявка с этим ключом уже была создана раньше
}
