package reply_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("reply_request: request not found")

	// ErrEmptyMessage возвращается, когда текст ответа пуст
	ErrEmptyMessage = errors.New("reply_request: message is empty")

	// ErrMessageTooLong возвращается, когда текст ответа длиннее допустимого
	ErrMessageTooLong = errors.New("reply_request: message is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reply_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reply_request: internal error")
)
