package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе заявки
	ErrInvalidStatus = errors.New("invalid request status")
)

// Request модели

// ListRequestsRequest запрос на получение списка заявок
type ListRequestsRequest struct {
	Status *string `json:"status,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequestsRequest) ToDomainFilter() (domain.RequestsFilter, error) {
	filter := domain.RequestsFilter{
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainRequestStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OptionalNumber числовое поле формы
// null и пропуск дают пустое значение, нечисловое значение не ломает разбор запроса:
// Value остается nil, а исходный текст сохраняется в Raw
type OptionalNumber struct {
	Value   *float64
	Raw     string
	Invalid bool
}

// Num возвращает заполненное числовое поле
func Num(v float64) OptionalNumber {
	return OptionalNumber{Value: &v}
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	*n = OptionalNumber{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		n.Value = &v
		return nil
	}

	n.Invalid = true
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		n.Raw = text
	} else {
		n.Raw = string(data)
	}
	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// SelectionsRequest ввод формы custom-плана
// Пропущенное или нечисловое число заменяется значением по умолчанию
type SelectionsRequest struct {
	GuestCount OptionalNumber `json:"guestCount"`

	FoodStyle   string `json:"foodStyle,omitempty"`
	Beverage    string `json:"beverage,omitempty"`
	Cake        string `json:"cake,omitempty"`
	Floral      string `json:"floral,omitempty"`
	Coordinator string `json:"coordinator,omitempty"`
	Officiant   string `json:"officiant,omitempty"`

	FoodPrice        OptionalNumber `json:"foodPrice"`
	BeveragePrice    OptionalNumber `json:"beveragePrice"`
	CakePrice        OptionalNumber `json:"cakePrice"`
	FloralPrice      OptionalNumber `json:"floralPrice"`
	CoordinatorPrice OptionalNumber `json:"coordinatorPrice"`
	OfficiantPrice   OptionalNumber `json:"officiantPrice"`

	Notes string `json:"notes,omitempty"`
}

// ToDomain конвертирует ввод формы в domain модель
func (s *SelectionsRequest) ToDomain() domain.Selections {
	if s == nil {
		return domain.Selections{}
	}

	out := domain.Selections{
		GuestCount:       s.GuestCount.Value,
		FoodStyle:        s.FoodStyle,
		Beverage:         s.Beverage,
		Cake:             s.Cake,
		Floral:           s.Floral,
		Coordinator:      s.Coordinator,
		Officiant:        s.Officiant,
		FoodPrice:        s.FoodPrice.Value,
		BeveragePrice:    s.BeveragePrice.Value,
		CakePrice:        s.CakePrice.Value,
		FloralPrice:      s.FloralPrice.Value,
		CoordinatorPrice: s.CoordinatorPrice.Value,
		OfficiantPrice:   s.OfficiantPrice.Value,
		Notes:            s.Notes,
	}

	numbers := map[string]OptionalNumber{
		"guestCount":       s.GuestCount,
		"foodPrice":        s.FoodPrice,
		"beveragePrice":    s.BeveragePrice,
		"cakePrice":        s.CakePrice,
		"floralPrice":      s.FloralPrice,
		"coordinatorPrice": s.CoordinatorPrice,
		"officiantPrice":   s.OfficiantPrice,
	}
	for field, n := range numbers {
		if !n.Invalid {
			continue
		}
		if out.Rejected == nil {
			out.Rejected = make(map[string]string)
		}
		out.Rejected[field] = n.Raw
	}

	return out
}

// Response модели

// ClientResponse контакты пары
type ClientResponse struct {
	PrimaryName string  `json:"primaryName"`
	PartnerName *string `json:"partnerName,omitempty"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Pronouns    *string `json:"pronouns,omitempty"`
}

// LineItemResponse строка сметы
type LineItemResponse struct {
	Vendor string `json:"vendor"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// EstimateResponse смета
type EstimateResponse struct {
	LineItems []LineItemResponse `json:"lineItems"`
	Total     int64              `json:"total"`
	Deposit   int64              `json:"deposit"`
}

// SelectionsResponse нормализованный custom-план
type SelectionsResponse struct {
	GuestCount int `json:"guestCount"`

	FoodStyle   string `json:"foodStyle"`
	Beverage    string `json:"beverage"`
	Cake        string `json:"cake"`
	Floral      string `json:"floral"`
	Coordinator string `json:"coordinator"`
	Officiant   string `json:"officiant"`

	FoodPrice        float64 `json:"foodPrice"`
	BeveragePrice    float64 `json:"beveragePrice"`
	CakePrice        float64 `json:"cakePrice"`
	FloralPrice      float64 `json:"floralPrice"`
	CoordinatorPrice float64 `json:"coordinatorPrice"`
	OfficiantPrice   float64 `json:"officiantPrice"`

	Notes string `json:"notes,omitempty"`
}

// AdjustmentResponse замена, сделанная при нормализации ввода
type AdjustmentResponse struct {
	Field    string `json:"field"`
	Kind     string `json:"kind"`
	Original string `json:"original,omitempty"`
	Applied  string `json:"applied"`
}

// MessageResponse сообщение переписки
type MessageResponse struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	ViaEmail  bool   `json:"viaEmail"`
	CreatedAt string `json:"createdAt"`
}

// RequestResponse заявка
type RequestResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	EventDate   string              `json:"eventDate"` // "2025-01-18"
	PlanType    string              `json:"planType"`
	Client      ClientResponse      `json:"client"`
	Selections  *SelectionsResponse `json:"selections,omitempty"`
	Estimate    EstimateResponse    `json:"estimate"`
	Notes       *string             `json:"notes,omitempty"`
	Messages    []MessageResponse   `json:"messages,omitempty"`
	SubmittedAt string              `json:"submittedAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

// RequestListResponse список заявок
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Count    int               `json:"count"`
}

// Конвертеры

// ToDomainRequestStatus конвертирует строку в статус заявки
func ToDomainRequestStatus(s string) (domain.RequestStatus, error) {
	status := domain.RequestStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainRequest конвертирует заявку в response
func FromDomainRequest(r *domain.BookingRequest) *RequestResponse {
	resp := &RequestResponse{
		ID:          r.ID,
		Status:      string(r.Status),
		EventDate:   r.EventDate.Format(domain.DateFormat),
		PlanType:    string(r.PlanType),
		Client:      FromDomainClient(r.Client),
		Selections:  FromDomainSelections(r.Selections),
		Estimate:    FromDomainEstimate(r.Estimate),
		Notes:       r.Notes,
		SubmittedAt: r.SubmittedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}

	if len(r.Messages) > 0 {
		resp.Messages = make([]MessageResponse, len(r.Messages))
		for i, msg := range r.Messages {
			resp.Messages[i] = FromDomainMessage(msg)
		}
	}

	return resp
}

// FromDomainRequestList конвертирует список заявок в response
func FromDomainRequestList(requests []*domain.BookingRequest) *RequestListResponse {
	resp := &RequestListResponse{
		Requests: make([]RequestResponse, len(requests)),
		Count:    len(requests),
	}
	for i, r := range requests {
		resp.Requests[i] = *FromDomainRequest(r)
	}
	return resp
}

func FromDomainClient(c domain.Client) ClientResponse {
	return ClientResponse{
		PrimaryName: c.PrimaryName,
		PartnerName: c.PartnerName,
		Email:       c.Email,
		Phone:       c.Phone,
		Pronouns:    c.Pronouns,
	}
}

func FromDomainEstimate(e domain.Estimate) EstimateResponse {
	items := make([]LineItemResponse, len(e.LineItems))
	for i, item := range e.LineItems {
		items[i] = LineItemResponse{
			Vendor: item.Vendor,
			Label:  item.Label,
			Amount: item.Amount,
		}
	}
	return EstimateResponse{
		LineItems: items,
		Total:     e.Total,
		Deposit:   e.Deposit,
	}
}

func FromDomainSelections(s *domain.CustomSelections) *SelectionsResponse {
	if s == nil {
		return nil
	}
	return &SelectionsResponse{
		GuestCount:       s.GuestCount,
		FoodStyle:        s.FoodStyle,
		Beverage:         s.Beverage,
		Cake:             s.Cake,
		Floral:           s.Floral,
		Coordinator:      s.Coordinator,
		Officiant:        s.Officiant,
		FoodPrice:        s.FoodPrice,
		BeveragePrice:    s.BeveragePrice,
		CakePrice:        s.CakePrice,
		FloralPrice:      s.FloralPrice,
		CoordinatorPrice: s.CoordinatorPrice,
		OfficiantPrice:   s.OfficiantPrice,
		Notes:            s.Notes,
	}
}

func FromDomainAdjustments(adjustments []domain.Adjustment) []AdjustmentResponse {
	out := make([]AdjustmentResponse, len(adjustments))
	for i, a := range adjustments {
		out[i] = AdjustmentResponse{
			Field:    a.Field,
			Kind:     string(a.Kind),
			Original: a.Original,
			Applied:  a.Applied,
		}
	}
	return out
}

func FromDomainMessage(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Body:      m.Body,
		ViaEmail:  m.ViaEmail,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
