package requests

import (
	"context"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingRequest, error)
	GetMessages(ctx context.Context, requestID string) ([]domain.Message, error)
	List(ctx context.Context, filter domain.RequestsFilter) ([]*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
}

// EstimateRenderer интерфейс генератора PDF сметы
type EstimateRenderer interface {
	Render(req *domain.BookingRequest) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
