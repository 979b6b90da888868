package create_request

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// normalizeRequest обрезает пробелы в текстовых полях
func normalizeRequest(req *Request) {
	req.Client.PrimaryName = strings.TrimSpace(req.Client.PrimaryName)
	req.Client.Email = strings.ToLower(strings.TrimSpace(req.Client.Email))
	req.Client.Phone = strings.TrimSpace(req.Client.Phone)
	req.Client.PartnerName = trimOptional(req.Client.PartnerName)
	req.Client.Pronouns = trimOptional(req.Client.Pronouns)
	req.Notes = trimOptional(req.Notes)
	req.IdempotencyKey = trimOptional(req.IdempotencyKey)
	req.UID = trimOptional(req.UID)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if !req.PlanType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlanType, req.PlanType)
	}

	if utf8.RuneCountInString(req.Client.PrimaryName) < domain.MinPrimaryNameLength {
		return fmt.Errorf("%w: primaryName must be at least %d characters", ErrInvalidInput, domain.MinPrimaryNameLength)
	}

	if err := validateEmail(req.Client.Email); err != nil {
		return err
	}

	if utf8.RuneCountInString(req.Client.Phone) < domain.MinPhoneLength {
		return fmt.Errorf("%w: phone must be at least %d characters", ErrInvalidInput, domain.MinPhoneLength)
	}

	// Ограничения длины совпадают с размерами колонок в БД
	limits := []struct {
		field string
		value *string
		max   int
	}{
		{field: "primaryName", value: &req.Client.PrimaryName, max: domain.MaxPrimaryNameLength},
		{field: "partnerName", value: req.Client.PartnerName, max: domain.MaxPartnerNameLength},
		{field: "email", value: &req.Client.Email, max: domain.MaxEmailLength},
		{field: "phone", value: &req.Client.Phone, max: domain.MaxPhoneLength},
		{field: "pronouns", value: req.Client.Pronouns, max: domain.MaxPronounsLength},
		{field: "uid", value: req.UID, max: domain.MaxUIDLength},
		{field: "Idempotency-Key", value: req.IdempotencyKey, max: domain.MaxIdempotencyKeyLength},
	}
	for _, l := range limits {
		if l.value != nil && utf8.RuneCountInString(*l.value) > l.max {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, l.field, l.max)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateEmail проверяет, что строка является одиночным адресом без имени
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
