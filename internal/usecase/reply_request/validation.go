package reply_request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// validateRequest валидирует входные данные, текст ответа обрезается по краям
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RequestID) == "" {
		return fmt.Errorf("%w: requestId is required", ErrInvalidInput)
	}

	req.Body = strings.TrimSpace(req.Body)
	if req.Body == "" {
		return ErrEmptyMessage
	}

	if n := utf8.RuneCountInString(req.Body); n > domain.MaxReplyLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrMessageTooLong, n, domain.MaxReplyLength)
	}

	return nil
}
