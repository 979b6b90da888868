package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/pkg/dbmetrics"
	"github.com/m04kA/TD-WeddingService/pkg/psqlbuilder"
)

const (
	requestsTable = "booking_requests"
	messagesTable = "request_messages"

	uniqueViolationCode = "23505"
)

var requestColumns = []string{
	"id",
	"status",
	"event_date",
	"plan_type",
	"primary_name",
	"partner_name",
	"email",
	"phone",
	"pronouns",
	"selections",
	"line_items",
	"total",
	"deposit",
	"notes",
	"uid",
	"idempotency_key",
	"submitted_at",
	"updated_at",
}

var messageColumns = []string{
	"id",
	"request_id",
	"sender",
	"body",
	"via_email",
	"created_at",
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий заявок и их переписки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку
// ID и временные метки выставляет вызывающий код
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selections, err := encodeSelections(req.Selections)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - selections: %v", ErrEncode, err)
	}
	lineItems, err := encodeLineItems(req.Estimate.LineItems)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - line items: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(requestsTable).
		Columns(requestColumns...).
		Values(
			req.ID,
			req.Status,
			req.EventDate,
			req.PlanType,
			req.Client.PrimaryName,
			req.Client.PartnerName,
			req.Client.Email,
			req.Client.Phone,
			req.Client.Pronouns,
			jsonValue(selections),
			jsonValue(lineItems),
			req.Estimate.Total,
			req.Estimate.Deposit,
			req.Notes,
			req.UID,
			req.IdempotencyKey,
			req.SubmittedAt,
			req.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateIdempotencyKey
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// CreateMessage добавляет сообщение в переписку заявки
func (r *Repository) CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(messagesTable).
		Columns(messageColumns...).
		Values(msg.ID, msg.RequestID, msg.Sender, msg.Body, msg.ViaEmail, msg.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - execute insert: %v", ErrExecQuery, err)
	}

	return msg, nil
}

// GetByID получает заявку по ID без переписки
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingRequest, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, false)
}

// GetByIDForUpdate получает заявку и блокирует строку до конца транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.BookingRequest, error) {
	return r.getOne(ctx, "GetByIDForUpdate", squirrel.Eq{"id": id}, true)
}

// GetByIdempotencyKey получает заявку по ключу идемпотентности
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.BookingRequest, error) {
	return r.getOne(ctx, "GetByIdempotencyKey", squirrel.Eq{"idempotency_key": key}, false)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq, forUpdate bool) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(requestColumns...).
		From(requestsTable).
		Where(where)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan request: %v", ErrScanRow, op, err)
	}

	return req, nil
}

// GetMessages получает переписку заявки в хронологическом порядке
func (r *Repository) GetMessages(ctx context.Context, requestID string) ([]domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMessages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMessages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.RequestID,
			&msg.Sender,
			&msg.Body,
			&msg.ViaEmail,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetMessages - scan message: %v", ErrScanRow, err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMessages - rows iteration: %v", ErrScanRow, err)
	}

	return messages, nil
}

// List получает заявки по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.RequestsFilter) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(requestColumns...).
		From(requestsTable).
		OrderBy("submitted_at DESC", "id DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.BookingRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan request: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return requests, nil
}

// UpdateStatus меняет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(requestsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// Touch обновляет updated_at заявки
func (r *Repository) Touch(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(requestsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Touch - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Touch - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func scanRequest(row scanner) (*domain.BookingRequest, error) {
	var (
		req        domain.BookingRequest
		selections []byte
		lineItems  []byte
	)

	err := row.Scan(
		&req.ID,
		&req.Status,
		&req.EventDate,
		&req.PlanType,
		&req.Client.PrimaryName,
		&req.Client.PartnerName,
		&req.Client.Email,
		&req.Client.Phone,
		&req.Client.Pronouns,
		&selections,
		&lineItems,
		&req.Estimate.Total,
		&req.Estimate.Deposit,
		&req.Notes,
		&req.UID,
		&req.IdempotencyKey,
		&req.SubmittedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if req.Selections, err = decodeSelections(selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	if req.Estimate.LineItems, err = decodeLineItems(lineItems); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}

	return &req, nil
}

// jsonValue передает JSON строкой: lib/pq кодирует []byte как bytea
func jsonValue(raw []byte) interface{} {
	if raw == nil {
		return nil
	}
	return string(raw)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
