package get_leaderboard

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

	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Leaderboard(ctx context.Context, req *models.LeaderboardRequest) (*models.LeaderboardResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaderboardResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc Service, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/leaderboard", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.HeaderUserID, "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Leaderboard", mock.Anything, &models.LeaderboardRequest{Scope: domain.ScopeUser, Days: 30}).
		Return(&models.LeaderboardResponse{
			Scope: "user",
			Days:  30,
			Entries: []models.LeaderboardEntryResponse{
				{Rank: 1, EntityID: 8, TotalSeconds: 3600},
			},
		}, nil)

	rec := serve(svc, "/api/v1/leaderboard?scope=user&days=30")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.LeaderboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, int64(3600), body.Entries[0].TotalSeconds)
	svc.AssertExpectations(t)
}

func TestHandle_DefaultsToSevenDays(t *testing.T) {
	svc := &mockService{}
	svc.On("Leaderboard", mock.Anything, &models.LeaderboardRequest{Scope: domain.ScopeRoom, Days: 7}).
		Return(&models.LeaderboardResponse{Scope: "room", Days: 7}, nil)

	rec := serve(svc, "/api/v1/leaderboard?scope=room")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_BadInput(t *testing.T) {
	svc := &mockService{}
	svc.On("Leaderboard", mock.Anything, mock.Anything).Return(nil, usage.ErrInvalidLeaderboardDays)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/leaderboard?scope=room&days=x").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/leaderboard?scope=room&days=3").Code)
	svc.AssertNumberOfCalls(t, "Leaderboard", 1)
}
