package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ErrInvalidRequestID {requestId} в пути не является UUID
var ErrInvalidRequestID = errors.New("invalid request id")

// PathRequestID возвращает {requestId} из пути в каноническом виде UUID
func PathRequestID(r *http.Request) (string, error) {
	raw := strings.TrimSpace(mux.Vars(r)["requestId"])

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRequestID, raw)
	}

	return id.String(), nil
}
