package approve_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/authz"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
	approveReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/approve_reservation"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *approveReservation.Request) (*models.ReservationResponse, error) {
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

func serve(uc ApproveReservationUseCase, path, userID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/reservations/{id}/approve", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Approved(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &approveReservation.Request{ReviewerID: 2, ReservationID: 15}).
		Return(&models.ReservationResponse{ID: 15, Status: "approved"}, nil)

	rec := serve(uc, "/api/v1/reservations/15/approve", "2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "approved", body.Status)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		userID     string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no identity",
			path:       "/api/v1/reservations/15/approve",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "invalid id",
			path:       "/api/v1/reservations/0/approve",
			userID:     "2",
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "no review permission",
			path:       "/api/v1/reservations/15/approve",
			userID:     "2",
			ucErr:      authz.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "already decided",
			path:       "/api/v1/reservations/15/approve",
			userID:     "2",
			ucErr:      approveReservation.ErrNotPending,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "overlaps approved reservation",
			path:       "/api/v1/reservations/15/approve",
			userID:     "2",
			ucErr:      admission.ErrTimeConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "unknown reservation",
			path:       "/api/v1/reservations/15/approve",
			userID:     "2",
			ucErr:      approveReservation.ErrReservationNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "permission source down",
			path:       "/api/v1/reservations/15/approve",
			userID:     "2",
			ucErr:      authz.ErrUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(uc, tt.path, tt.userID)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			uc.AssertExpectations(t)
		})
	}
}
