package domain

import "time"

// PlanType is the kind of plan a couple chose
type PlanType string

const (
	PlanStreamlined PlanType = "streamlined"
	PlanCustom      PlanType = "custom"
)

// IsValid returns true for known plan types
func (p PlanType) IsValid() bool {
	return p == PlanStreamlined || p == PlanCustom
}

// RequestStatus is the admin workflow state of a booking request
type RequestStatus string

const (
	RequestStatusNew            RequestStatus = "new"
	RequestStatusInProgress     RequestStatus = "in_progress"
	RequestStatusAwaitingClient RequestStatus = "awaiting_client"
	RequestStatusBooked         RequestStatus = "booked"
)

// RequestStatuses lists all statuses
var RequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusAwaitingClient,
	RequestStatusBooked,
}

// IsValid returns true for known statuses
func (s RequestStatus) IsValid() bool {
	for _, st := range RequestStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// MessageSender is the author of a request message
type MessageSender string

const (
	SenderGuest  MessageSender = "guest"
	SenderAdmin  MessageSender = "admin"
	SenderSystem MessageSender = "system"
)

// Client holds the couple's contact details
type Client struct {
	PrimaryName string
	PartnerName *string
	Email       string
	Phone       string
	Pronouns    *string
}

// Message is one entry of a request's conversation thread
type Message struct {
	ID        string
	RequestID string
	Sender    MessageSender
	Body      string
	ViaEmail  bool
	CreatedAt time.Time
}

// BookingRequest is a submitted intake: date, contact, plan and the estimate shown to the couple
type BookingRequest struct {
	ID        string
	Status    RequestStatus
	EventDate time.Time
	PlanType  PlanType
	Client    Client

	Selections *CustomSelections // только для custom-плана
	Estimate   Estimate
	Notes      *string

	UID            *string // Firebase uid, если гость авторизовался
	IdempotencyKey *string

	Messages []Message

	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// IsCustom returns true if the request uses a custom plan
func (r *BookingRequest) IsCustom() bool {
	return r.PlanType == PlanCustom
}

// RequestsFilter filters the admin request list
type RequestsFilter struct {
	Status *RequestStatus
	Limit  int
	Offset int
}
