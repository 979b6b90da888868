package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/pkg/ptr"
)

func newTestService() *Service {
	return NewService(domain.DefaultCatalog())
}

func exampleSelections() domain.Selections {
	return domain.Selections{
		GuestCount:  ptr.Ptr(32.0),
		FoodStyle:   "plated",
		Beverage:    "cocktails",
		Cake:        "need",
		Floral:      "inHouse",
		Coordinator: "fullPlanning",
		Officiant:   "notRequired",
	}
}

func lineAmounts(e domain.Estimate) []int64 {
	out := make([]int64, len(e.LineItems))
	for i, item := range e.LineItems {
		out[i] = item.Amount
	}
	return out
}

func TestCompute_WorkedExample(t *testing.T) {
	svc := newTestService()

	result := svc.Compute(exampleSelections())

	require.Len(t, result.Estimate.LineItems, 7)
	assert.Equal(t, []int64{2600, 2816, 1088, 480, 780, 1500, 0}, lineAmounts(result.Estimate))
	assert.Equal(t, int64(9264), result.Estimate.Total)
	assert.Equal(t, int64(2316), result.Estimate.Deposit)
	assert.Empty(t, result.Adjustments)
}

func TestCompute_LineItemLabelsAndVendors(t *testing.T) {
	svc := newTestService()

	items := svc.Compute(exampleSelections()).Estimate.LineItems

	assert.Equal(t, domain.EstimateLineItem{
		Vendor: "Tiny Diner Venue & Staffing",
		Label:  "Venue reservation & staffing",
		Amount: 2600,
	}, items[0])
	assert.Equal(t, "Local Effort", items[1].Vendor)
	assert.Equal(t, "Local Effort plated dinner (32 guests)", items[1].Label)
	assert.Equal(t, "Signature cocktail program (32 guests)", items[2].Label)
	assert.Equal(t, "Local Effort dessert table", items[3].Label)
	assert.Equal(t, "Tiny Diner Officiant Collective", items[6].Vendor)
}

func TestCompute_VendorOverride(t *testing.T) {
	svc := newTestService()
	sel := exampleSelections()
	sel.Cake = "bring"

	items := svc.Compute(sel).Estimate.LineItems

	assert.Equal(t, "Tiny Diner Venue Support", items[3].Vendor)
	assert.Equal(t, int64(180), items[3].Amount)
}

func TestCompute_TotalAndDepositInvariant(t *testing.T) {
	svc := newTestService()

	for guests := 10; guests <= 120; guests += 7 {
		for _, food := range []string{"buffet", "plated", "appetizers", "notRequired"} {
			sel := exampleSelections()
			sel.GuestCount = ptr.Ptr(float64(guests))
			sel.FoodStyle = food
			sel.FoodPrice = ptr.Ptr(61.37)

			e := svc.ComputeEstimate(sel)

			assert.Equal(t, e.SumLineItems(), e.Total)
			assert.Equal(t, int64(math.Round(float64(e.Total)*0.25)), e.Deposit)
			assert.Equal(t, int64(2600), e.LineItems[0].Amount)
		}
	}
}

func TestCompute_PerGuestScalesLinearly(t *testing.T) {
	svc := newTestService()

	small := exampleSelections()
	small.GuestCount = ptr.Ptr(30.0)
	large := exampleSelections()
	large.GuestCount = ptr.Ptr(60.0)

	smallItems := svc.ComputeEstimate(small).LineItems
	largeItems := svc.ComputeEstimate(large).LineItems

	assert.Equal(t, 2*smallItems[1].Amount, largeItems[1].Amount)
	assert.Equal(t, 2*smallItems[2].Amount, largeItems[2].Amount)
	// flat-категории не зависят от числа гостей
	assert.Equal(t, smallItems[3].Amount, largeItems[3].Amount)
}

func TestCompute_GuestCountClamp(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		guests   *float64
		want     int
		wantKind []domain.AdjustmentKind
	}{
		{name: "above max", guests: ptr.Ptr(500.0), want: 120, wantKind: []domain.AdjustmentKind{domain.AdjustmentGuestCountClamped}},
		{name: "below min", guests: ptr.Ptr(3.0), want: 10, wantKind: []domain.AdjustmentKind{domain.AdjustmentGuestCountClamped}},
		{name: "rounded", guests: ptr.Ptr(32.6), want: 33, wantKind: []domain.AdjustmentKind{domain.AdjustmentGuestCountRounded}},
		{name: "missing", guests: nil, want: 35, wantKind: []domain.AdjustmentKind{domain.AdjustmentGuestCountDefaulted}},
		{name: "nan", guests: ptr.Ptr(math.NaN()), want: 35, wantKind: []domain.AdjustmentKind{domain.AdjustmentGuestCountDefaulted}},
		{name: "in range", guests: ptr.Ptr(120.0), want: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := exampleSelections()
			sel.GuestCount = tt.guests

			result := svc.Compute(sel)

			assert.Equal(t, tt.want, result.Selections.GuestCount)
			kinds := make([]domain.AdjustmentKind, 0, len(result.Adjustments))
			for _, a := range result.Adjustments {
				kinds = append(kinds, a.Kind)
			}
			if tt.wantKind == nil {
				assert.Empty(t, kinds)
			} else {
				assert.Equal(t, tt.wantKind, kinds)
			}
		})
	}
}

func TestCompute_ClampIdempotence(t *testing.T) {
	svc := newTestService()

	over := exampleSelections()
	over.GuestCount = ptr.Ptr(500.0)
	atMax := exampleSelections()
	atMax.GuestCount = ptr.Ptr(120.0)

	assert.Equal(t, svc.ComputeEstimate(atMax), svc.ComputeEstimate(over))
}

func TestCompute_PriceSanitization(t *testing.T) {
	svc := newTestService()
	base := svc.ComputeEstimate(exampleSelections())

	t.Run("nan falls back to default price", func(t *testing.T) {
		sel := exampleSelections()
		sel.FoodPrice = ptr.Ptr(math.NaN())
		sel.FloralPrice = ptr.Ptr(math.Inf(1))

		result := svc.Compute(sel)

		assert.Equal(t, base, result.Estimate)
		require.Len(t, result.Adjustments, 2)
		assert.Equal(t, domain.AdjustmentPriceDefaulted, result.Adjustments[0].Kind)
		assert.Equal(t, "foodPrice", result.Adjustments[0].Field)
	})

	t.Run("negative clamps to zero", func(t *testing.T) {
		sel := exampleSelections()
		sel.CoordinatorPrice = ptr.Ptr(-300.0)

		result := svc.Compute(sel)

		assert.Equal(t, int64(0), result.Estimate.LineItems[5].Amount)
		assert.Equal(t, base.Total-1500, result.Estimate.Total)
		require.Len(t, result.Adjustments, 1)
		assert.Equal(t, domain.AdjustmentPriceClamped, result.Adjustments[0].Kind)
	})

	t.Run("override replaces default", func(t *testing.T) {
		sel := exampleSelections()
		sel.FoodPrice = ptr.Ptr(90.5)

		items := svc.ComputeEstimate(sel).LineItems

		assert.Equal(t, int64(2896), items[1].Amount) // 90.5 * 32
	})

	t.Run("huge override clamps to max price", func(t *testing.T) {
		sel := exampleSelections()
		sel.GuestCount = ptr.Ptr(120.0)
		sel.FoodPrice = ptr.Ptr(1e17)
		sel.CakePrice = ptr.Ptr(5e18)
		sel.FloralPrice = ptr.Ptr(5e18)

		result := svc.Compute(sel)

		e := result.Estimate
		assert.Greater(t, e.Total, int64(0))
		assert.Equal(t, e.SumLineItems(), e.Total)
		assert.Greater(t, e.Deposit, int64(0))
		assert.Equal(t, int64(domain.DefaultMaxPrice*120), e.LineItems[1].Amount)
		for _, item := range e.LineItems {
			assert.GreaterOrEqual(t, item.Amount, int64(0))
			assert.LessOrEqual(t, item.Amount, int64(domain.DefaultMaxPrice*120))
		}

		require.Len(t, result.Adjustments, 3)
		for _, adj := range result.Adjustments {
			assert.Equal(t, domain.AdjustmentPriceClamped, adj.Kind)
			assert.Equal(t, "100000", adj.Applied)
		}
		assert.Equal(t, domain.Adjustment{
			Field:    "foodPrice",
			Kind:     domain.AdjustmentPriceClamped,
			Original: "100000000000000000",
			Applied:  "100000",
		}, result.Adjustments[0])
	})

	t.Run("price at max price is kept", func(t *testing.T) {
		sel := exampleSelections()
		sel.CakePrice = ptr.Ptr(domain.DefaultMaxPrice)

		result := svc.Compute(sel)

		assert.Empty(t, result.Adjustments)
		assert.Equal(t, domain.DefaultMaxPrice, result.Selections.CakePrice)
	})

	t.Run("non-numeric input falls back with original text", func(t *testing.T) {
		sel := exampleSelections()
		sel.GuestCount = nil
		sel.Rejected = map[string]string{
			"guestCount": "thirty",
			"foodPrice":  "abc",
		}

		result := svc.Compute(sel)

		assert.Equal(t, 35, result.Selections.GuestCount)
		assert.Equal(t, 88.0, result.Selections.FoodPrice)
		require.Len(t, result.Adjustments, 2)
		assert.Equal(t, domain.Adjustment{
			Field:    "guestCount",
			Kind:     domain.AdjustmentGuestCountDefaulted,
			Original: "thirty",
			Applied:  "35",
		}, result.Adjustments[0])
		assert.Equal(t, domain.Adjustment{
			Field:    "foodPrice",
			Kind:     domain.AdjustmentPriceDefaulted,
			Original: "abc",
			Applied:  "88",
		}, result.Adjustments[1])
	})
}

func TestCompute_UnknownOptionFallsBackToFirst(t *testing.T) {
	svc := newTestService()
	sel := exampleSelections()
	sel.FoodStyle = "tacoTruck"

	result := svc.Compute(sel)

	assert.Equal(t, "buffet", result.Selections.FoodStyle)
	assert.Equal(t, 62.0, result.Selections.FoodPrice)
	assert.Equal(t, int64(62*32), result.Estimate.LineItems[1].Amount)
	require.Len(t, result.Adjustments, 1)
	assert.Equal(t, domain.Adjustment{
		Field:    "food",
		Kind:     domain.AdjustmentOptionDefaulted,
		Original: "tacoTruck",
		Applied:  "buffet",
	}, result.Adjustments[0])
}

func TestCompute_EmptyValueUsesCategoryDefault(t *testing.T) {
	svc := newTestService()
	sel := exampleSelections()
	sel.Officiant = ""

	result := svc.Compute(sel)

	assert.Equal(t, "bring", result.Selections.Officiant)
	assert.Equal(t, int64(180), result.Estimate.LineItems[6].Amount)
}

func TestDefaultSelections(t *testing.T) {
	svc := newTestService()

	sel := svc.DefaultSelections()

	assert.Equal(t, 35, sel.GuestCount)
	assert.Equal(t, "buffet", sel.FoodStyle)
	assert.Equal(t, 62.0, sel.FoodPrice)
	assert.Equal(t, "dayOf", sel.Coordinator)
	assert.Equal(t, 750.0, sel.CoordinatorPrice)
	assert.Equal(t, "bring", sel.Officiant)
}

func TestStreamlined(t *testing.T) {
	svc := newTestService()

	e := svc.Streamlined()

	assert.Equal(t, int64(4000), e.Total)
	assert.Equal(t, int64(1000), e.Deposit)
	assert.Equal(t, e.SumLineItems(), e.Total)
}

func TestNewService_FillsDefaults(t *testing.T) {
	catalog := domain.DefaultCatalog()
	catalog.DepositRate = 0
	catalog.MinGuests = 0
	catalog.MaxGuests = 0

	svc := NewService(catalog)

	assert.Equal(t, domain.DefaultDepositRate, svc.Catalog().DepositRate)
	assert.Equal(t, domain.MinGuestCount, svc.Catalog().MinGuests)
	assert.Equal(t, domain.MaxGuestCount, svc.Catalog().MaxGuests)
	assert.Equal(t, domain.DefaultMaxPrice, svc.Catalog().MaxPrice)
}

func TestNewService_BoundsLimits(t *testing.T) {
	catalog := domain.DefaultCatalog()
	catalog.MaxGuests = domain.MaxGuestCountLimit * 10
	catalog.MaxPrice = domain.MaxPriceLimit * 10

	svc := NewService(catalog)

	assert.Equal(t, domain.MaxGuestCountLimit, svc.Catalog().MaxGuests)
	assert.Equal(t, domain.DefaultMaxPrice, svc.Catalog().MaxPrice)

	sel := exampleSelections()
	sel.GuestCount = ptr.Ptr(1e12)
	sel.FoodPrice = ptr.Ptr(math.MaxFloat64)
	sel.BeveragePrice = ptr.Ptr(math.MaxFloat64)
	sel.CoordinatorPrice = ptr.Ptr(math.MaxFloat64)

	e := svc.ComputeEstimate(sel)

	assert.Greater(t, e.Total, int64(0))
	assert.Equal(t, e.SumLineItems(), e.Total)
}
