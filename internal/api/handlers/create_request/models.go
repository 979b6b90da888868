package create_request

import (
	"strings"
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
	createRequest "github.com/m04kA/TD-WeddingService/internal/usecase/create_request"
)

// IdempotencyKeyHeader заголовок, делающий повторную отправку формы безопасной
const IdempotencyKeyHeader = "Idempotency-Key"

// CreateRequestRequest HTTP request model
type CreateRequestRequest struct {
	EventDate  string                    `json:"eventDate"` // "2025-01-18"
	PlanType   string                    `json:"planType"`  // "streamlined" | "custom"
	Client     ClientRequest             `json:"client"`
	Selections *models.SelectionsRequest `json:"selections,omitempty"`
	Notes      *string                   `json:"notes,omitempty"`
	UID        *string                   `json:"uid,omitempty"`
}

type ClientRequest struct {
	PrimaryName string  `json:"primaryName"`
	PartnerName *string `json:"partnerName,omitempty"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Pronouns    *string `json:"pronouns,omitempty"`
}

// CreateRequestResponse HTTP response model
type CreateRequestResponse struct {
	Request     *models.RequestResponse     `json:"request"`
	Adjustments []models.AdjustmentResponse `json:"adjustments"`
	Replayed    bool                        `json:"replayed"`
}

// DateUnavailableResponse ответ 409 со статусом выбранной даты
type DateUnavailableResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *CreateRequestRequest) ToUseCaseRequest(idempotencyKey string) (*createRequest.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	req := &createRequest.Request{
		EventDate: eventDate,
		PlanType:  domain.PlanType(r.PlanType),
		Client: domain.Client{
			PrimaryName: r.Client.PrimaryName,
			PartnerName: r.Client.PartnerName,
			Email:       r.Client.Email,
			Phone:       r.Client.Phone,
			Pronouns:    r.Client.Pronouns,
		},
		Notes: r.Notes,
		UID:   r.UID,
	}

	if r.Selections != nil {
		selections := r.Selections.ToDomain()
		req.Selections = &selections
	}

	if key := strings.TrimSpace(idempotencyKey); key != "" {
		req.IdempotencyKey = &key
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createRequest.Response) *CreateRequestResponse {
	return &CreateRequestResponse{
		Request:     models.FromDomainRequest(resp.Request),
		Adjustments: models.FromDomainAdjustments(resp.Adjustments),
		Replayed:    resp.Replayed,
	}
}
