package create_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	requestRepo "github.com/m04kA/TD-WeddingService/internal/infra/storage/request"
)

// UseCase use case для создания заявки на свадьбу
type UseCase struct {
	requestRepo  RequestRepository
	availability AvailabilityService
	pricing      PricingService
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	availability AvailabilityService,
	pricing PricingService,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		availability: availability,
		pricing:      pricing,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
// Смета пересчитывается на сервере, присланные клиентом суммы не принимаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateRequest: date=%s, plan=%s, email=%s",
		req.EventDate.Format(domain.DateFormat), req.PlanType, req.Client.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Повторный запрос с тем же ключом возвращает уже созданную заявку
	if req.IdempotencyKey != nil {
		existing, err := uc.findByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			uc.logger.Info("CreateRequest: idempotent replay, request id=%s", existing.ID)
			return &Response{Request: existing, Adjustments: []domain.Adjustment{}, Replayed: true}, nil
		}
	}

	// 3. Проверяем доступность даты
	if status := uc.availability.Classify(req.EventDate); !status.IsBookable() {
		uc.logger.Warn("CreateRequest: date %s is %s", req.EventDate.Format(domain.DateFormat), status)
		return nil, &DateUnavailableError{Status: status}
	}

	// 4. Считаем смету
	estimate, selections, adjustments := uc.computeEstimate(req)

	// 5. Собираем заявку
	now := uc.timeProvider.Now().UTC()
	request := &domain.BookingRequest{
		ID:             uuid.NewString(),
		Status:         domain.RequestStatusNew,
		EventDate:      req.EventDate,
		PlanType:       req.PlanType,
		Client:         req.Client,
		Selections:     selections,
		Estimate:       estimate,
		Notes:          req.Notes,
		UID:            req.UID,
		IdempotencyKey: req.IdempotencyKey,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}

	messages := []domain.Message{{
		ID:        uuid.NewString(),
		RequestID: request.ID,
		Sender:    domain.SenderSystem,
		Body:      submittedMessage(request),
		CreatedAt: now,
	}}
	if req.Notes != nil {
		messages = append(messages, domain.Message{
			ID:        uuid.NewString(),
			RequestID: request.ID,
			Sender:    domain.SenderGuest,
			Body:      *req.Notes,
			CreatedAt: now,
		})
	}

	// 6. Сохраняем заявку и первые сообщения в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.requestRepo.Create(txCtx, request); err != nil {
			return err
		}

		for i := range messages {
			if _, err := uc.requestRepo.CreateMessage(txCtx, &messages[i]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		// Параллельный запрос с тем же ключом успел сохранить заявку первым
		if errors.Is(err, requestRepo.ErrDuplicateIdempotencyKey) && req.IdempotencyKey != nil {
			existing, findErr := uc.findByIdempotencyKey(ctx, *req.IdempotencyKey)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				uc.logger.Info("CreateRequest: concurrent idempotent replay, request id=%s", existing.ID)
				return &Response{Request: existing, Adjustments: []domain.Adjustment{}, Replayed: true}, nil
			}
		}

		uc.logger.Error("CreateRequest: failed to save request: %v", err)
		return nil, fmt.Errorf("%w: failed to save request: %v", ErrInternal, err)
	}

	request.Messages = messages
	uc.metrics.IncRequestSubmitted(string(request.PlanType))

	uc.logger.Info("CreateRequest: successfully created request id=%s, total=%d, deposit=%d",
		request.ID, estimate.Total, estimate.Deposit)

	return &Response{
		Request:     request,
		Adjustments: adjustments,
	}, nil
}

// findByIdempotencyKey возвращает nil без ошибки, если заявки с ключом нет
func (uc *UseCase) findByIdempotencyKey(ctx context.Context, key string) (*domain.BookingRequest, error) {
	existing, err := uc.requestRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			return nil, nil
		}
		uc.logger.Error("CreateRequest: failed to check idempotency key: %v", err)
		return nil, fmt.Errorf("%w: failed to check idempotency key: %v", ErrInternal, err)
	}
	return existing, nil
}

func (uc *UseCase) computeEstimate(req *Request) (domain.Estimate, *domain.CustomSelections, []domain.Adjustment) {
	if req.PlanType == domain.PlanStreamlined {
		return uc.pricing.Streamlined(), nil, []domain.Adjustment{}
	}

	var in domain.Selections
	if req.Selections != nil {
		in = *req.Selections
	}

	result := uc.pricing.Compute(in)
	return result.Estimate, &result.Selections, result.Adjustments
}

func submittedMessage(r *domain.BookingRequest) string {
	plan := "custom plan"
	if r.PlanType == domain.PlanStreamlined {
		plan = "Tiny Diner Signature package"
	}
	return fmt.Sprintf("Request submitted for %s (%s), estimate total $%d, deposit $%d",
		r.EventDate.Format("January 2, 2006"), plan, r.Estimate.Total, r.Estimate.Deposit)
}
