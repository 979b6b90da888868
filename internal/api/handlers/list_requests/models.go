package list_requests

import (
	"fmt"
	"strconv"

	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(statusStr, limitStr, offsetStr string) (*models.ListRequestsRequest, error) {
	req := &models.ListRequestsRequest{}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid limit value: %q", limitStr)
		}
		req.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("invalid offset value: %q", offsetStr)
		}
		req.Offset = offset
	}

	return req, nil
}
