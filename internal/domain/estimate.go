package domain

// EstimateLineItem is one priced row of an estimate
type EstimateLineItem struct {
	Vendor string
	Label  string
	Amount int64 // целые денежные единицы, всегда >= 0
}

// Estimate is an itemized total with the deposit due to hold a date
type Estimate struct {
	LineItems []EstimateLineItem
	Total     int64
	Deposit   int64
}

// SumLineItems returns the sum of all line item amounts
func (e *Estimate) SumLineItems() int64 {
	var sum int64
	for _, item := range e.LineItems {
		sum += item.Amount
	}
	return sum
}

// AdjustmentKind describes how an input value was normalized
type AdjustmentKind string

const (
	AdjustmentGuestCountDefaulted AdjustmentKind = "guest_count_defaulted"
	AdjustmentGuestCountRounded   AdjustmentKind = "guest_count_rounded"
	AdjustmentGuestCountClamped   AdjustmentKind = "guest_count_clamped"
	AdjustmentOptionDefaulted     AdjustmentKind = "option_defaulted"
	AdjustmentPriceDefaulted      AdjustmentKind = "price_defaulted"
	AdjustmentPriceClamped        AdjustmentKind = "price_clamped"
)

// Adjustment records one silent normalization applied to the input
type Adjustment struct {
	Field    string
	Kind     AdjustmentKind
	Original string
	Applied  string
}
