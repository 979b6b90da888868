package requests

import (
	"context"
	"errors"
	"fmt"

	requestRepo "github.com/m04kA/TD-WeddingService/internal/infra/storage/request"
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
)

// Service сервис администраторской работы с заявками
type Service struct {
	requestRepo RequestRepository
	renderer    EstimateRenderer
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	requestRepo RequestRepository,
	renderer EstimateRenderer,
	logger Logger,
) *Service {
	return &Service{
		requestRepo: requestRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// List получает заявки, новые первыми
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListRequestsRequest) (*models.RequestListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d requests (status=%v, limit=%d, offset=%d)",
		len(requests), req.Status, filter.Limit, filter.Offset)
	return models.FromDomainRequestList(requests), nil
}

// GetByID получает заявку вместе с перепиской
func (s *Service) GetByID(ctx context.Context, id string) (*models.RequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%s not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	messages, err := s.requestRepo.GetMessages(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load messages for request id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - messages: %v", ErrInternal, err)
	}
	request.Messages = messages

	s.logger.Info("GetByID: fetched request id=%s with %d messages", id, len(messages))
	return models.FromDomainRequest(request), nil
}

// UpdateStatus меняет статус заявки
// Переходы между статусами не ограничены: администратор ведет заявку вручную
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.RequestResponse, error) {
	status, err := models.ToDomainRequestStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for request id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("UpdateStatus: request id=%s not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("UpdateStatus: repository error for request id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: request id=%s moved to %s", id, status)
	return s.GetByID(ctx, id)
}

// EstimatePDF формирует PDF со сметой заявки
func (s *Service) EstimatePDF(ctx context.Context, id string) ([]byte, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("EstimatePDF: request id=%s not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("EstimatePDF: repository error for request id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: EstimatePDF - repository error: %v", ErrInternal, err)
	}

	doc, err := s.renderer.Render(request)
	if err != nil {
		s.logger.Error("EstimatePDF: failed to render request id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: EstimatePDF - render: %v", ErrInternal, err)
	}

	s.logger.Info("EstimatePDF: rendered %d bytes for request id=%s", len(doc), id)
	return doc, nil
}
