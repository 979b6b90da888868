package get_request

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
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

func (m *mockService) GetByID(ctx context.Context, id string) (*models.RequestResponse, error) {
	args := m.Called(ctx, id)
	if resp, ok := args.Get(0).(*models.RequestResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

const testRequestID = "6f1c2a4e-8b3d-4c5e-9f70-1a2b3c4d5e6f"

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/requests/{requestId}", h.Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests/"+id, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.NewNop())

	svc.On("GetByID", mock.Anything, testRequestID).Return(&models.RequestResponse{
		ID:     testRequestID,
		Status: "in_progress",
		Messages: []models.MessageResponse{
			{ID: "m1", Sender: "system", Body: "Request submitted"},
		},
	}, nil)

	rec := serve(h, testRequestID)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testRequestID, resp.ID)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "system", resp.Messages[0].Sender)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{name: "not found", svcErr: requests.ErrRequestNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", svcErr: errors.New("db is down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			h := NewHandler(svc, logger.NewNop())
			svc.On("GetByID", mock.Anything, testRequestID).Return(nil, tt.svcErr)

			rec := serve(h, testRequestID)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_InvalidID(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, logger.NewNop())

	rec := serve(h, "not-a-uuid")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
