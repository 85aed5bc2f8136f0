package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondError(t *testing.T) {
	errConflict := apperror.New(apperror.Conflict, "startAt", "time conflict")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
		wantMsg    string
	}{
		{
			name:       "conflict keeps field",
			err:        errConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantField:  "startAt",
			wantMsg:    "time conflict",
		},
		{
			name:       "wrapped sentinel",
			err:        fmt.Errorf("CreateReservation: %w", apperror.New(apperror.Forbidden, "", "banned")),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
			wantMsg:    "banned",
		},
		{
			name:       "internal kind is hidden",
			err:        fmt.Errorf("%w: connection refused", apperror.New(apperror.Internal, "", "reservations: internal error")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    msgInternalError,
		},
		{
			name:       "plain error is internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantField, body.Field)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "A", dst.Name)
}

func TestPathID(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err := PathID(req, "id")
		assert.Error(t, err, raw)
	}
}

func TestQueryPage(t *testing.T) {
	limit, offset, err := QueryPage(httptest.NewRequest(http.MethodGet, "/?limit=10&offset=20", nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), limit)
	assert.Equal(t, uint64(20), offset)

	limit, offset, err = QueryPage(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Zero(t, limit)
	assert.Zero(t, offset)

	_, _, err = QueryPage(httptest.NewRequest(http.MethodGet, "/?limit=-1", nil))
	assert.Error(t, err)
}

func TestQueryTimePtr(t *testing.T) {
	got, err := QueryTimePtr(httptest.NewRequest(http.MethodGet, "/?from=2025-03-03T08:00:00Z", nil), "from")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Hour())

	got, err = QueryTimePtr(httptest.NewRequest(http.MethodGet, "/", nil), "from")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = QueryTimePtr(httptest.NewRequest(http.MethodGet, "/?from=2025-03-03", nil), "from")
	assert.Error(t, err)
}

func TestLogServiceError(t *testing.T) {
	log := &recordingLogger{}

	LogServiceError(log, "GET /x", apperror.New(apperror.NotFound, "", "not found"))
	LogServiceError(log, "GET /x", errors.New("db down"))

	assert.Equal(t, []string{"GET /x - not found"}, log.warns)
	assert.Equal(t, []string{"GET /x - db down"}, log.errors)
}
