package get_request

import (
	"context"

	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
)

type RequestService interface {
	GetByID(ctx context.Context, id string) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
