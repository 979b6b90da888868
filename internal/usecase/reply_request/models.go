package reply_request

import "github.com/m04kA/TD-WeddingService/internal/domain"

// Request модель запроса на ответ паре
type Request struct {
	RequestID  string // ID заявки
	AdminEmail string // Email администратора из токена
	Body       string // Текст ответа
}

// Response модель ответа с сохраненным сообщением
type Response struct {
	Message   domain.Message
	Status    domain.RequestStatus // Статус заявки после ответа
	EmailSent bool                 // false, если письмо не ушло; сообщение все равно сохранено
}
