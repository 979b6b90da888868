package get_availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/availability"
	getAvailability "github.com/m04kA/TD-WeddingService/internal/usecase/get_availability"
	"github.com/m04kA/TD-WeddingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopMetrics struct{}

func (nopMetrics) IncAvailability(string) {}

func newHandler() *Handler {
	calendar := domain.NewCalendar(time.UTC, domain.DefaultEventWeekdays,
		[]string{"2024-11-09", "2025-01-18"},
		[]string{"2024-11-16"},
	)
	svc := availability.NewService(calendar, fixedClock{now: time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)})
	uc := getAvailability.NewUseCase(svc, nopMetrics{}, logger.NewNop())
	return NewHandler(uc, logger.NewNop())
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle_Range(t *testing.T) {
	rec := get(newHandler(), "/api/v1/availability?from=2024-11-14&to=2024-11-17")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2024-11-14", resp.From)
	assert.Equal(t, "2024-11-17", resp.To)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, []DayResponse{
		{Date: "2024-11-14", Status: "available"},
		{Date: "2024-11-15", Status: "available"},
		{Date: "2024-11-16", Status: "hold"},
		{Date: "2024-11-17", Status: "unavailable"},
	}, resp.Days)
}

func TestHandler_Handle_SingleDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "2025-01-18", want: "booked"},
		{date: "2025-01-15", want: "unavailable"},
		{date: "2024-10-31", want: "past"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			rec := get(newHandler(), "/api/v1/availability?date="+tt.date)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp AvailabilityResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Days, 1)
			assert.Equal(t, tt.want, resp.Days[0].Status)
		})
	}
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "no params", target: "/api/v1/availability"},
		{name: "only from", target: "/api/v1/availability?from=2024-11-14"},
		{name: "bad date", target: "/api/v1/availability?date=11/14/2024"},
		{name: "reversed", target: "/api/v1/availability?from=2024-11-17&to=2024-11-14"},
		{name: "too long", target: "/api/v1/availability?from=2024-01-01&to=2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newHandler(), tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
