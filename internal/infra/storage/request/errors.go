package request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("request.repository: request not found")

	// ErrDuplicateIdempotencyKey возвращается, когда заявка с таким ключом идемпотентности уже есть
	ErrDuplicateIdempotencyKey = errors.New("request.repository: duplicate idempotency key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("request.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации JSON-полей
	ErrEncode = errors.New("request.repository: failed to encode json column")
)
