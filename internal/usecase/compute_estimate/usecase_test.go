package compute_estimate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/pricing"
	"github.com/m04kA/TD-WeddingService/pkg/logger"
	"github.com/m04kA/TD-WeddingService/pkg/ptr"
)

type countingMetrics struct {
	plans []string
}

func (m *countingMetrics) IncEstimate(plan string) {
	m.plans = append(m.plans, plan)
}

func newUseCase() (*UseCase, *countingMetrics) {
	m := &countingMetrics{}
	return NewUseCase(pricing.NewService(domain.DefaultCatalog()), m, logger.NewNop()), m
}

func TestExecute_Custom(t *testing.T) {
	uc, m := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		PlanType: domain.PlanCustom,
		Selections: domain.Selections{
			GuestCount:  ptr.Ptr(32.0),
			FoodStyle:   "plated",
			Beverage:    "cocktails",
			Cake:        "need",
			Floral:      "inHouse",
			Coordinator: "fullPlanning",
			Officiant:   "notRequired",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9264), resp.Estimate.Total)
	assert.Equal(t, int64(2316), resp.Estimate.Deposit)
	require.NotNil(t, resp.Selections)
	assert.Equal(t, 32, resp.Selections.GuestCount)
	assert.Empty(t, resp.Adjustments)
	assert.Equal(t, []string{"custom"}, m.plans)
}

func TestExecute_EmptyPlanIsCustom(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Selections: domain.Selections{GuestCount: ptr.Ptr(500.0)},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PlanCustom, resp.PlanType)
	assert.Equal(t, 120, resp.Selections.GuestCount)
	assert.NotEmpty(t, resp.Adjustments)
}

func TestExecute_Streamlined(t *testing.T) {
	uc, m := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{PlanType: domain.PlanStreamlined})

	require.NoError(t, err)
	assert.Equal(t, int64(4000), resp.Estimate.Total)
	assert.Equal(t, int64(1000), resp.Estimate.Deposit)
	assert.Nil(t, resp.Selections)
	assert.NotNil(t, resp.Adjustments)
	assert.Equal(t, []string{"streamlined"}, m.plans)
}

func TestExecute_InvalidPlan(t *testing.T) {
	uc, m := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{PlanType: "deluxe"})

	assert.ErrorIs(t, err, ErrInvalidPlanType)
	assert.Empty(t, m.plans)
}
