package get_availability

import (
	"errors"
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	getAvailability "github.com/m04kA/TD-WeddingService/internal/usecase/get_availability"
)

var errMissingRange = errors.New("either date or from and to are required")

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Timezone string        `json:"timezone"`
	Days     []DayResponse `json:"days"`
}

type DayResponse struct {
	Date   string `json:"date"`   // "2025-01-18"
	Status string `json:"status"` // available | hold | booked | unavailable | past
}

// ToUseCaseRequest формирует запрос к use case из query параметров
// date задает одиночный день и имеет приоритет над from/to
func ToUseCaseRequest(dateStr, fromStr, toStr string) (*getAvailability.Request, error) {
	if dateStr != "" {
		fromStr, toStr = dateStr, dateStr
	}
	if fromStr == "" || toStr == "" {
		return nil, errMissingRange
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{From: from, To: to}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayResponse{
			Date:   d.Date.Format(domain.DateFormat),
			Status: string(d.Status),
		}
	}

	return &AvailabilityResponse{
		From:     resp.From.Format(domain.DateFormat),
		To:       resp.To.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Days:     days,
	}
}
