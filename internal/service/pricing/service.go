package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// Result is a computed estimate together with the normalized input and the adjustments made to it
type Result struct {
	Estimate    domain.Estimate
	Selections  domain.CustomSelections
	Adjustments []domain.Adjustment
}

// Service считает сметы по таблицам опций каталога
// Не имеет изменяемого состояния, безопасен для конкурентного использования
type Service struct {
	catalog domain.Catalog
}

// NewService создает сервис расчета смет по переданному каталогу
func NewService(catalog domain.Catalog) *Service {
	if catalog.MinGuests <= 0 {
		catalog.MinGuests = domain.MinGuestCount
	}
	if catalog.MaxGuests < catalog.MinGuests {
		catalog.MaxGuests = domain.MaxGuestCount
	}
	if catalog.DefaultGuestCount <= 0 {
		catalog.DefaultGuestCount = domain.DefaultGuestCount
	}
	if catalog.DepositRate <= 0 {
		catalog.DepositRate = domain.DefaultDepositRate
	}
	if catalog.MaxGuests > domain.MaxGuestCountLimit {
		catalog.MaxGuests = domain.MaxGuestCountLimit
	}
	if catalog.MaxPrice <= 0 || catalog.MaxPrice > domain.MaxPriceLimit {
		catalog.MaxPrice = domain.DefaultMaxPrice
	}

	return &Service{catalog: catalog}
}

// Catalog возвращает каталог опций, по которому считаются сметы
func (s *Service) Catalog() domain.Catalog {
	return s.catalog
}

// DefaultSelections возвращает предзаполненный custom-план: значения по умолчанию и их базовые цены
func (s *Service) DefaultSelections() domain.CustomSelections {
	sel := domain.CustomSelections{GuestCount: s.catalog.DefaultGuestCount}
	for _, c := range domain.Categories {
		options, ok := s.catalog.Category(c)
		if !ok {
			continue
		}
		opt, _ := options.Resolve(options.DefaultValue)
		sel.SetChoice(c, opt.Value, opt.DefaultPrice)
	}
	return sel
}

// Compute нормализует ввод и считает смету custom-плана
// Функция тотальна: некорректные значения тихо заменяются, а замены перечисляются в Adjustments
func (s *Service) Compute(in domain.Selections) Result {
	selections, adjustments := s.Normalize(in)

	return Result{
		Estimate:    s.buildEstimate(selections),
		Selections:  selections,
		Adjustments: adjustments,
	}
}

// ComputeEstimate возвращает только смету
func (s *Service) ComputeEstimate(in domain.Selections) domain.Estimate {
	return s.Compute(in).Estimate
}

// Streamlined возвращает фиксированную смету пакета Signature
func (s *Service) Streamlined() domain.Estimate {
	pkg := s.catalog.Streamlined
	return domain.Estimate{
		LineItems: []domain.EstimateLineItem{
			{
				Vendor: s.catalog.VenueVendor,
				Label:  pkg.Name,
				Amount: pkg.Price,
			},
		},
		Total:   pkg.Price,
		Deposit: s.Deposit(pkg.Price),
	}
}

// Deposit считает депозит от итоговой суммы
func (s *Service) Deposit(total int64) int64 {
	return int64(math.Round(float64(total) * s.catalog.DepositRate))
}

// Normalize приводит ввод формы к полностью определенному custom-плану
func (s *Service) Normalize(in domain.Selections) (domain.CustomSelections, []domain.Adjustment) {
	adjustments := make([]domain.Adjustment, 0)

	guests, guestAdjustments := s.normalizeGuestCount(in.GuestCount, rejectedInput(in, "guestCount"))
	adjustments = append(adjustments, guestAdjustments...)

	out := domain.CustomSelections{
		GuestCount: guests,
		Notes:      strings.TrimSpace(in.Notes),
	}

	for _, c := range domain.Categories {
		options, ok := s.catalog.Category(c)
		if !ok {
			continue
		}

		value, rawPrice := in.Choice(c)
		opt, adj := resolveOption(options, value)
		if adj != nil {
			adjustments = append(adjustments, *adj)
		}

		field := string(c) + "Price"
		price, adj := s.sanitizePrice(field, rawPrice, rejectedInput(in, field), opt.DefaultPrice)
		if adj != nil {
			adjustments = append(adjustments, *adj)
		}

		out.SetChoice(c, opt.Value, price)
	}

	return out, adjustments
}

// rejectedInput возвращает исходный текст поля, пришедшего не числом
func rejectedInput(in domain.Selections, field string) *string {
	raw, ok := in.RejectedInput(field)
	if !ok {
		return nil
	}
	return &raw
}

func (s *Service) normalizeGuestCount(raw *float64, rejected *string) (int, []domain.Adjustment) {
	if raw == nil || math.IsNaN(*raw) || math.IsInf(*raw, 0) {
		original := ""
		switch {
		case raw != nil:
			original = formatNumber(*raw)
		case rejected != nil:
			original = *rejected
		}
		return s.catalog.DefaultGuestCount, []domain.Adjustment{{
			Field:    "guestCount",
			Kind:     domain.AdjustmentGuestCountDefaulted,
			Original: original,
			Applied:  strconv.Itoa(s.catalog.DefaultGuestCount),
		}}
	}

	var adjustments []domain.Adjustment

	rounded := math.Round(*raw)
	if rounded != *raw {
		adjustments = append(adjustments, domain.Adjustment{
			Field:    "guestCount",
			Kind:     domain.AdjustmentGuestCountRounded,
			Original: formatNumber(*raw),
			Applied:  formatNumber(rounded),
		})
	}

	clamped := math.Max(float64(s.catalog.MinGuests), math.Min(float64(s.catalog.MaxGuests), rounded))
	if clamped != rounded {
		adjustments = append(adjustments, domain.Adjustment{
			Field:    "guestCount",
			Kind:     domain.AdjustmentGuestCountClamped,
			Original: formatNumber(rounded),
			Applied:  formatNumber(clamped),
		})
	}

	return int(clamped), adjustments
}

// resolveOption возвращает опцию по значению
// Пустое значение заменяется значением категории по умолчанию, неизвестное - первой опцией
func resolveOption(options *domain.CategoryOptions, value string) (domain.ServiceOption, *domain.Adjustment) {
	if value == "" {
		opt, _ := options.Resolve(options.DefaultValue)
		return opt, &domain.Adjustment{
			Field:   string(options.Category),
			Kind:    domain.AdjustmentOptionDefaulted,
			Applied: opt.Value,
		}
	}

	opt, found := options.Resolve(value)
	if found {
		return opt, nil
	}

	return opt, &domain.Adjustment{
		Field:    string(options.Category),
		Kind:     domain.AdjustmentOptionDefaulted,
		Original: value,
		Applied:  opt.Value,
	}
}

// sanitizePrice возвращает цену категории: отсутствующая или нечисловая - базовая цена опции,
// отрицательная - ноль, выше MaxPrice каталога - MaxPrice
func (s *Service) sanitizePrice(field string, raw *float64, rejected *string, defaultPrice float64) (float64, *domain.Adjustment) {
	if raw == nil {
		if rejected == nil {
			return defaultPrice, nil
		}
		return defaultPrice, &domain.Adjustment{
			Field:    field,
			Kind:     domain.AdjustmentPriceDefaulted,
			Original: *rejected,
			Applied:  formatNumber(defaultPrice),
		}
	}

	if math.IsNaN(*raw) || math.IsInf(*raw, 0) {
		return defaultPrice, &domain.Adjustment{
			Field:    field,
			Kind:     domain.AdjustmentPriceDefaulted,
			Original: formatNumber(*raw),
			Applied:  formatNumber(defaultPrice),
		}
	}

	if *raw < 0 {
		return 0, &domain.Adjustment{
			Field:    field,
			Kind:     domain.AdjustmentPriceClamped,
			Original: formatNumber(*raw),
			Applied:  "0",
		}
	}

	if *raw > s.catalog.MaxPrice {
		return s.catalog.MaxPrice, &domain.Adjustment{
			Field:    field,
			Kind:     domain.AdjustmentPriceClamped,
			Original: formatNumber(*raw),
			Applied:  formatNumber(s.catalog.MaxPrice),
		}
	}

	return *raw, nil
}

// buildEstimate строит смету из нормализованного плана
// Первой строкой всегда идет аренда площадки, затем по строке на каждую категорию
func (s *Service) buildEstimate(sel domain.CustomSelections) domain.Estimate {
	lineItems := make([]domain.EstimateLineItem, 0, len(domain.Categories)+1)
	lineItems = append(lineItems, domain.EstimateLineItem{
		Vendor: s.catalog.VenueVendor,
		Label:  s.catalog.VenueLabel,
		Amount: s.catalog.VenueFee,
	})

	for _, c := range domain.Categories {
		options, ok := s.catalog.Category(c)
		if !ok {
			continue
		}

		value, price := sel.Choice(c)
		opt, _ := options.Resolve(value)

		item := domain.EstimateLineItem{
			Vendor: options.VendorFor(opt),
			Label:  opt.Title,
		}
		if opt.PricingMode.IsPerGuest() {
			item.Amount = int64(math.Round(price * float64(sel.GuestCount)))
			item.Label = fmt.Sprintf("%s (%d guests)", opt.Title, sel.GuestCount)
		} else {
			item.Amount = int64(math.Round(price))
		}

		lineItems = append(lineItems, item)
	}

	estimate := domain.Estimate{LineItems: lineItems}
	estimate.Total = estimate.SumLineItems()
	estimate.Deposit = s.Deposit(estimate.Total)

	return estimate
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
