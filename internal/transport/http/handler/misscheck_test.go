package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medicare-companion/adherence-api/internal/application/misscheck"
	"github.com/medicare-companion/adherence-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockCheckSvc struct{ mock.Mock }

func (m *mockCheckSvc) Run(ctx context.Context, now time.Time) (*misscheck.Result, error) {
	args := m.Called(ctx, now)
	if r, _ := args.Get(0).(*misscheck.Result); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- tests ---

func TestCheck_ConfigurationError(t *testing.T) {
	svc := &mockCheckSvc{}
	h := NewMissedCheckHandler(svc, errors.New("missing required environment variables: MAIL_API_KEY"))

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/check-missed", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ConfigErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Configuration Error", body.Error)
	assert.Contains(t, body.Details, "MAIL_API_KEY")
	svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestCheck_FatalFetchError(t *testing.T) {
	svc := &mockCheckSvc{}
	svc.On("Run", mock.Anything, mock.Anything).
		Return(nil, errors.New("fetch schedules: dynamo unreachable"))
	h := NewMissedCheckHandler(svc, nil)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/check-missed", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body InternalErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Contains(t, body.Message, "fetch schedules")
}

func TestCheck_NoSchedules(t *testing.T) {
	svc := &mockCheckSvc{}
	svc.On("Run", mock.Anything, mock.Anything).
		Return(&misscheck.Result{NoCandidates: true}, nil)
	h := NewMissedCheckHandler(svc, nil)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/check-missed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No schedules found for this window.", body.Message)
}

func TestCheck_ReportsDispatchedAlerts(t *testing.T) {
	svc := &mockCheckSvc{}
	svc.On("Run", mock.Anything, mock.Anything).
		Return(&misscheck.Result{Reports: []domain.CheckReportEntry{
			{ScheduleID: "s1", EmailID: "em_1"},
			{ScheduleID: "s2", EmailID: "em_2"},
		}}, nil)
	h := NewMissedCheckHandler(svc, nil)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/check-missed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body CheckEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Check complete", body.Message)
	assert.Equal(t, 2, body.ReportsCount)
	require.Len(t, body.Reports, 2)
	assert.Equal(t, "s1", body.Reports[0].ScheduleID)
	assert.Equal(t, "em_2", body.Reports[1].EmailID)
}

func TestCheck_ZeroMissesStillReportsComplete(t *testing.T) {
	svc := &mockCheckSvc{}
	svc.On("Run", mock.Anything, mock.Anything).
		Return(&misscheck.Result{Reports: []domain.CheckReportEntry{}}, nil)
	h := NewMissedCheckHandler(svc, nil)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/check-missed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body CheckEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Check complete", body.Message)
	assert.Equal(t, 0, body.ReportsCount)
	assert.NotNil(t, body.Reports)
}
