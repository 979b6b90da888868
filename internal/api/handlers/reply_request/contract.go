package reply_request

import (
	"context"

	replyRequest "github.com/m04kA/TD-WeddingService/internal/usecase/reply_request"
)

type ReplyRequestUseCase interface {
	Execute(ctx context.Context, req *replyRequest.Request) (*replyRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
