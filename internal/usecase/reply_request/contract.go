package reply_request

import (
	"context"
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/integrations/notifier"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.BookingRequest, error)
	CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	Touch(ctx context.Context, id string) error
}

// NotifierClient интерфейс клиента почтовых уведомлений
type NotifierClient interface {
	SendEmail(ctx context.Context, email notifier.Email) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
