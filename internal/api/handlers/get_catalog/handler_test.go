package get_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/pricing"
	"github.com/m04kA/TD-WeddingService/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(pricing.NewService(domain.DefaultCatalog()), logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(2600), resp.Venue.Fee)
	assert.Equal(t, 0.25, resp.DepositRate)
	assert.Equal(t, GuestsResponse{Min: 10, Max: 120, Default: 35}, resp.Guests)
	require.Len(t, resp.Categories, 6)
	assert.Equal(t, "food", resp.Categories[0].Category)
	assert.Equal(t, "officiant", resp.Categories[5].Category)

	// Опция с переопределенным поставщиком
	cake := resp.Categories[2]
	assert.Equal(t, "bring", cake.Options[1].Value)
	assert.Equal(t, "Tiny Diner Venue Support", cake.Options[1].Vendor)
	assert.Equal(t, "Local Effort", cake.Options[0].Vendor)

	require.NotNil(t, resp.Defaults)
	assert.Equal(t, 35, resp.Defaults.GuestCount)
	assert.Equal(t, "buffet", resp.Defaults.FoodStyle)

	assert.Equal(t, "Tiny Diner Signature", resp.Streamlined.Name)
	assert.Equal(t, int64(4000), resp.Streamlined.Estimate.Total)
	assert.Equal(t, int64(1000), resp.Streamlined.Estimate.Deposit)
}
