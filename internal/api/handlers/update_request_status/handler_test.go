package update_request_status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/service/requests"
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
	"github.com/m04kA/TD-WeddingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.RequestResponse, error) {
	args := m.Called(ctx, id, req)
	if resp, ok := args.Get(0).(*models.RequestResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

const testRequestID = "6f1c2a4e-8b3d-4c5e-9f70-1a2b3c4d5e6f"

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/requests/{requestId}/status", h.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/requests/"+id+"/status", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.NewNop())

	svc.On("UpdateStatus", mock.Anything, testRequestID, &models.UpdateStatusRequest{Status: "booked"}).
		Return(&models.RequestResponse{ID: testRequestID, Status: "booked"}, nil)

	rec := serve(h, testRequestID, `{"status":"booked"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booked", resp.Status)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "malformed body", body: `{"status":`, wantStatus: http.StatusBadRequest},
		{name: "invalid status", body: `{"status":"archived"}`, svcErr: requests.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"status":"booked"}`, svcErr: requests.ErrRequestNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: `{"status":"booked"}`, svcErr: errors.New("db is down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			h := NewHandler(svc, logger.NewNop())
			if tt.svcErr != nil {
				svc.On("UpdateStatus", mock.Anything, testRequestID, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(h, testRequestID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_InvalidID(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.NewNop())

	rec := serve(h, "42", `{"status":"booked"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
