package get_floor_overview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) FloorOverview(ctx context.Context, req *models.FloorOverviewRequest) (*models.FloorOverviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FloorOverviewResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc Service, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/buildings/{id}/floors/{floorNo}/overview", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithoutFromLeavesDefaultToService(t *testing.T) {
	svc := &mockService{}
	svc.On("FloorOverview", mock.Anything, &models.FloorOverviewRequest{BuildingID: 1, FloorNo: -1, Days: 1}).
		Return(&models.FloorOverviewResponse{BuildingID: 1, FloorNo: -1}, nil)

	rec := serve(svc, "/api/v1/buildings/1/floors/-1/overview")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_ExplicitWindow(t *testing.T) {
	svc := &mockService{}
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc.On("FloorOverview", mock.Anything, mock.MatchedBy(func(req *models.FloorOverviewRequest) bool {
		return req.BuildingID == 1 && req.FloorNo == 2 && req.From.Equal(from) && req.Days == 5
	})).Return(&models.FloorOverviewResponse{BuildingID: 1, FloorNo: 2}, nil)

	rec := serve(svc, "/api/v1/buildings/1/floors/2/overview?from=2025-03-10T00:00:00Z&days=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidQuery(t *testing.T) {
	svc := &mockService{}

	for _, path := range []string{
		"/api/v1/buildings/1/floors/2/overview?from=yesterday",
		"/api/v1/buildings/1/floors/2/overview?days=many",
		"/api/v1/buildings/1/floors/second/overview",
	} {
		rec := serve(svc, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
	svc.AssertNotCalled(t, "FloorOverview", mock.Anything, mock.Anything)
}
