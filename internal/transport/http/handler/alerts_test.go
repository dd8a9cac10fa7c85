package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medicare-companion/adherence-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAlertSvc struct{ mock.Mock }

func (m *mockAlertSvc) SendReminder(ctx context.Context, req domain.ReminderRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAlertSvc) SendCritical(ctx context.Context, req domain.CriticalAlertRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	h(rec, req)
	return rec
}

// --- tests ---

func TestReminder_Success(t *testing.T) {
	svc := &mockAlertSvc{}
	svc.On("SendReminder", mock.Anything, domain.ReminderRequest{
		To: "care@example.com", PatientName: "Asha", MedicineName: "Aspirin",
	}).Return("em_1", nil)
	h := NewAlertHandler(svc, nil)

	rec := postJSON(t, h.Reminder, map[string]string{
		"to": "care@example.com", "patientName": "Asha", "medicineName": "Aspirin",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body EmailEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "em_1", body.ID)
	svc.AssertExpectations(t)
}

func TestReminder_MissingRecipient(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc, nil)

	rec := postJSON(t, h.Reminder, map[string]string{"patientName": "Asha"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Recipient address (to) is required")
	svc.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything)
}

func TestReminder_InvalidBody(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	h.Reminder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCritical_ConfigurationError(t *testing.T) {
	svc := &mockAlertSvc{}
	h := NewAlertHandler(svc, fmt.Errorf("missing required environment variables: MAIL_API_KEY"))

	rec := postJSON(t, h.Critical, map[string]string{
		"to": "care@example.com", "patientName": "Asha",
		"medicineName": "Metformin", "scheduledTime": "09:00:00",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ConfigErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Configuration Error", body.Error)
	svc.AssertNotCalled(t, "SendCritical", mock.Anything, mock.Anything)
}

func TestCritical_ValidationErrorFromService(t *testing.T) {
	svc := &mockAlertSvc{}
	svc.On("SendCritical", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("field 'ScheduledTime' failed 'required': %w", domain.ErrBadRequest))
	h := NewAlertHandler(svc, nil)

	rec := postJSON(t, h.Critical, map[string]string{
		"to": "care@example.com", "patientName": "Asha", "medicineName": "Metformin",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCritical_TransportFailureIsBadGateway(t *testing.T) {
	svc := &mockAlertSvc{}
	svc.On("SendCritical", mock.Anything, mock.Anything).
		Return("", errors.New("mail API returned 500: upstream down"))
	h := NewAlertHandler(svc, nil)

	rec := postJSON(t, h.Critical, map[string]string{
		"to": "care@example.com", "patientName": "Asha",
		"medicineName": "Metformin", "scheduledTime": "09:00:00",
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "mail API returned 500")
}
