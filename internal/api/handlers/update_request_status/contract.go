package update_request_status

import (
	"context"

	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
)

type RequestService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
