package compute_estimate

import "github.com/m04kA/TD-WeddingService/internal/domain"

// Request модель запроса на расчет сметы
type Request struct {
	PlanType   domain.PlanType   // Пустой тип означает custom
	Selections domain.Selections // Ввод формы, для streamlined игнорируется
}

// Response модель ответа с рассчитанной сметой
type Response struct {
	PlanType    domain.PlanType
	Estimate    domain.Estimate
	Selections  *domain.CustomSelections // Нормализованный план, только для custom
	Adjustments []domain.Adjustment      // Замены, сделанные при нормализации
}
