package reject_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/authz"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Reject(ctx context.Context, req *models.RejectReservationRequest) (*models.ReservationResponse, error) {
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
	router.HandleFunc("/api/v1/reservations/{id}/reject", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Rejected(t *testing.T) {
	svc := &mockService{}
	svc.On("Reject", mock.Anything, &models.RejectReservationRequest{ReviewerID: 2, ReservationID: 15, Reason: "room under repair"}).
		Return(&models.ReservationResponse{ID: 15, Status: "rejected"}, nil)

	rec := serve(svc, "/api/v1/reservations/15/reject", "2", `{"reason":"room under repair"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rejected"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing body",
			path:       "/api/v1/reservations/15/reject",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "invalid id",
			path:       "/api/v1/reservations/-3/reject",
			body:       `{"reason":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "empty reason",
			path:       "/api/v1/reservations/15/reject",
			body:       `{"reason":""}`,
			svcErr:     reservations.ErrInvalidRejectReason,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "not pending",
			path:       "/api/v1/reservations/15/reject",
			body:       `{"reason":"x"}`,
			svcErr:     reservations.ErrNotPending,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "no review permission",
			path:       "/api/v1/reservations/15/reject",
			body:       `{"reason":"x"}`,
			svcErr:     authz.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("Reject", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(svc, tt.path, "2", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			svc.AssertExpectations(t)
		})
	}
}
