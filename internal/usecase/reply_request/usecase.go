package reply_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	requestRepo "github.com/m04kA/TD-WeddingService/internal/infra/storage/request"
	"github.com/m04kA/TD-WeddingService/internal/integrations/notifier"
)

// UseCase use case для ответа администратора паре
type UseCase struct {
	requestRepo  RequestRepository
	notifier     NotifierClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	notifier NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute сохраняет ответ в переписке заявки и отправляет его паре письмом
// Новая заявка переходит в in_progress. Ошибка отправки письма не откатывает сохраненный ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplyRequest: request=%s, admin=%s", req.RequestID, req.AdminEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReplyRequest: validation failed: %v", err)
		return nil, err
	}

	var (
		request *domain.BookingRequest
		status  domain.RequestStatus
		message = domain.Message{
			ID:        uuid.NewString(),
			RequestID: req.RequestID,
			Sender:    domain.SenderAdmin,
			Body:      req.Body,
			ViaEmail:  true,
			CreatedAt: uc.timeProvider.Now().UTC(),
		}
	)

	// 2. Сохраняем сообщение и двигаем статус в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем заявку до конца транзакции
		found, err := uc.requestRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}
		request = found
		status = found.Status

		// 2.2. Добавляем сообщение
		if _, err := uc.requestRepo.CreateMessage(txCtx, &message); err != nil {
			return fmt.Errorf("%w: failed to save message: %v", ErrInternal, err)
		}

		// 2.3. Первый ответ берет заявку в работу
		if found.Status == domain.RequestStatusNew {
			if err := uc.requestRepo.UpdateStatus(txCtx, found.ID, domain.RequestStatusInProgress); err != nil {
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			status = domain.RequestStatusInProgress
			return nil
		}

		if err := uc.requestRepo.Touch(txCtx, found.ID); err != nil {
			return fmt.Errorf("%w: failed to touch request: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			uc.logger.Warn("ReplyRequest: request id=%s not found", req.RequestID)
		} else {
			uc.logger.Error("ReplyRequest: failed to store reply for request id=%s: %v", req.RequestID, err)
		}
		return nil, err
	}

	// 3. Отправляем письмо паре
	emailSent := true
	sendErr := uc.notifier.SendEmail(ctx, notifier.Email{
		RequestID: request.ID,
		To:        request.Client.Email,
		Subject:   notifier.DefaultSubject,
		Message:   message.Body,
		SentBy:    req.AdminEmail,
		EstimateSummary: &notifier.EstimateSummary{
			Total:   request.Estimate.Total,
			Deposit: request.Estimate.Deposit,
		},
	})
	if sendErr != nil {
		emailSent = false
		uc.logger.Error("ReplyRequest: reply stored but email to %s failed for request id=%s: %v",
			request.Client.Email, request.ID, sendErr)
	}

	uc.logger.Info("ReplyRequest: reply id=%s stored for request id=%s, status=%s, emailSent=%t",
		message.ID, request.ID, status, emailSent)

	return &Response{
		Message:   message,
		Status:    status,
		EmailSent: emailSent,
	}, nil
}
