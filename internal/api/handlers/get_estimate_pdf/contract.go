package get_estimate_pdf

import "context"

type RequestService interface {
	EstimatePDF(ctx context.Context, id string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
