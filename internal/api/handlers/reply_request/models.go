package reply_request

import (
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
	replyRequest "github.com/m04kA/TD-WeddingService/internal/usecase/reply_request"
)

// ReplyRequest HTTP request model
type ReplyRequest struct {
	Message string `json:"message"`
}

// ReplyResponse HTTP response model
type ReplyResponse struct {
	Message   models.MessageResponse `json:"message"`
	Status    string                 `json:"status"`
	EmailSent bool                   `json:"emailSent"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplyRequest) ToUseCaseRequest(requestID, adminEmail string) *replyRequest.Request {
	return &replyRequest.Request{
		RequestID:  requestID,
		AdminEmail: adminEmail,
		Body:       r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *replyRequest.Response) *ReplyResponse {
	return &ReplyResponse{
		Message:   models.FromDomainMessage(resp.Message),
		Status:    string(resp.Status),
		EmailSent: resp.EmailSent,
	}
}
