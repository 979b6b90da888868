package availability

import (
	"time"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// Service классифицирует даты календаря площадки
type Service struct {
	calendar domain.Calendar
	clock    TimeProvider
}

// NewService создает классификатор по календарю
func NewService(calendar domain.Calendar, clock TimeProvider) *Service {
	if calendar.Location == nil {
		calendar.Location = time.UTC
	}
	if clock == nil {
		clock = &RealTimeProvider{}
	}

	return &Service{
		calendar: calendar,
		clock:    clock,
	}
}

// Calendar возвращает календарь, по которому идет классификация
func (s *Service) Calendar() domain.Calendar {
	return s.calendar
}

// Classify возвращает статус даты
// Порядок проверок: прошлое, день недели, забронировано, удержание
func (s *Service) Classify(date time.Time) domain.AvailabilityStatus {
	day := s.dayOf(date)

	// 1. Дата строго раньше начала сегодняшнего дня
	if day.Before(s.today()) {
		return domain.AvailabilityPast
	}

	// 2. Мероприятия проводятся только в разрешенные дни недели
	if _, ok := s.calendar.AllowedWeekdays[day.Weekday()]; !ok {
		return domain.AvailabilityUnavailable
	}

	iso := day.Format(domain.DateFormat)

	// 3. Дата уже забронирована
	if _, ok := s.calendar.Booked[iso]; ok {
		return domain.AvailabilityBooked
	}

	// 4. Дата удерживается под другой запрос
	if _, ok := s.calendar.Hold[iso]; ok {
		return domain.AvailabilityHold
	}

	return domain.AvailabilityAvailable
}

// IsBookable возвращает true, если на дату можно отправить заявку
func (s *Service) IsBookable(date time.Time) bool {
	return s.Classify(date).IsBookable()
}

// ClassifyRange возвращает статусы всех дней от from до to включительно
// Пустой результат, если to раньше from
func (s *Service) ClassifyRange(from, to time.Time) []domain.DayAvailability {
	start := s.dayOf(from)
	end := s.dayOf(to)

	if end.Before(start) {
		return []domain.DayAvailability{}
	}

	days := make([]domain.DayAvailability, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, domain.DayAvailability{
			Date:   day,
			Status: s.Classify(day),
		})
	}

	return days
}

// dayOf возвращает полночь календарного дня даты в часовом поясе календаря
// Год, месяц и день берутся из самой даты, без перевода между поясами
func (s *Service) dayOf(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.calendar.Location)
}

// today возвращает начало текущего дня в часовом поясе календаря
func (s *Service) today() time.Time {
	y, m, d := s.clock.Now().In(s.calendar.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.calendar.Location)
}
