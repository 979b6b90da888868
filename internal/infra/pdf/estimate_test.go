package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/pkg/ptr"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
}

func TestFormatMoney(t *testing.T) {
	tests := map[int64]string{
		0:       "$0",
		480:     "$480",
		2316:    "$2,316",
		9264:    "$9,264",
		1234567: "$1,234,567",
		-1500:   "-$1,500",
	}

	for amount, want := range tests {
		assert.Equal(t, want, FormatMoney(amount))
	}
}

func TestGenerator_Render(t *testing.T) {
	req := &domain.BookingRequest{
		ID:        "0b7f5c7e-1f5e-4c1e-9a53-5f7d2a1f0c11",
		EventDate: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		PlanType:  domain.PlanCustom,
		Client: domain.Client{
			PrimaryName: "Jordan Lee",
			PartnerName: ptr.Ptr("Sam Rivera"),
			Email:       "jordan@example.com",
			Phone:       "802-555-0101",
		},
		Selections: &domain.CustomSelections{GuestCount: 32},
		Estimate: domain.Estimate{
			LineItems: []domain.EstimateLineItem{
				{Vendor: "Tiny Diner Venue & Staffing", Label: "Venue reservation & staffing", Amount: 2600},
				{Vendor: "Local Effort", Label: "Local Effort plated dinner (32 guests)", Amount: 2816},
			},
			Total:   5416,
			Deposit: 1354,
		},
		Notes: ptr.Ptr("Garden ceremony, café lights"),
	}

	doc, err := New(fixedClock{}).Render(req)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Greater(t, len(doc), 200)
}

func TestCoupleName(t *testing.T) {
	assert.Equal(t, "Jordan", coupleName(domain.Client{PrimaryName: "Jordan"}))
	assert.Equal(t, "Jordan & Sam", coupleName(domain.Client{PrimaryName: "Jordan", PartnerName: ptr.Ptr("Sam")}))
}
