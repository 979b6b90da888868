package notifier

import "errors"

var (
	// ErrInvalidInput возвращается, когда у письма нет получателя или текста
	ErrInvalidInput = errors.New("notifier client: invalid email")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrDeliveryFailed возвращается, когда почтовый webhook отклонил письмо
	ErrDeliveryFailed = errors.New("notifier client: delivery failed")
)
