package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc Service, path, userID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/reservations/{id}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPatch, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	}
	req.Header.Set(middleware.HeaderUserID, userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithoutBody(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, &models.CancelReservationRequest{ActorID: 4, ReservationID: 9}).
		Return(&models.ReservationResponse{ID: 9, Status: "cancelled"}, nil)

	rec := serve(svc, "/api/v1/reservations/9/cancel", "4", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandle_WithReason(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, mock.MatchedBy(func(req *models.CancelReservationRequest) bool {
		return req.ActorID == 4 && req.ReservationID == 9 && req.Reason != nil && *req.Reason == "plans changed"
	})).Return(&models.ReservationResponse{ID: 9, Status: "cancelled"}, nil)

	rec := serve(svc, "/api/v1/reservations/9/cancel", "4", `{"reason":"plans changed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_NotCancellable(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, mock.Anything).Return(nil, reservations.ErrNotCancellable)

	rec := serve(svc, "/api/v1/reservations/9/cancel", "4", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &mockService{}

	rec := serve(svc, "/api/v1/reservations/abc/cancel", "4", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}
