package alert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/medicare-companion/adherence-api/internal/domain"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, msg mail.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func TestSendReminder_ComposesAndSends(t *testing.T) {
	mm := &mockMailer{}
	mm.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.From == "onboarding@resend.dev" &&
			msg.To[0] == "care@example.com" &&
			msg.Subject == "Medication Reminder: Aspirin" &&
			strings.Contains(msg.HTML, "Asha") &&
			strings.Contains(msg.HTML, "Aspirin")
	})).Return("em_42", nil)

	svc := NewService(mm, "onboarding@resend.dev")
	id, err := svc.SendReminder(context.Background(), domain.ReminderRequest{
		To:           "care@example.com",
		PatientName:  "Asha",
		MedicineName: "Aspirin",
	})

	require.NoError(t, err)
	assert.Equal(t, "em_42", id)
	mm.AssertExpectations(t)
}

func TestSendReminder_InvalidRequest(t *testing.T) {
	mm := &mockMailer{}
	svc := NewService(mm, "onboarding@resend.dev")

	_, err := svc.SendReminder(context.Background(), domain.ReminderRequest{
		To: "not-an-email", PatientName: "Asha", MedicineName: "Aspirin",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendCritical_ComposesAndSends(t *testing.T) {
	mm := &mockMailer{}
	mm.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.Subject == "CRITICAL: Missed Medication Alert for Asha" &&
			strings.Contains(msg.HTML, "Metformin") &&
			strings.Contains(msg.HTML, "09:00:00")
	})).Return("em_43", nil)

	svc := NewService(mm, "onboarding@resend.dev")
	id, err := svc.SendCritical(context.Background(), domain.CriticalAlertRequest{
		To:            "care@example.com",
		PatientName:   "Asha",
		MedicineName:  "Metformin",
		ScheduledTime: "09:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "em_43", id)
	mm.AssertExpectations(t)
}

func TestSendCritical_MissingScheduledTime(t *testing.T) {
	mm := &mockMailer{}
	svc := NewService(mm, "onboarding@resend.dev")

	_, err := svc.SendCritical(context.Background(), domain.CriticalAlertRequest{
		To: "care@example.com", PatientName: "Asha", MedicineName: "Metformin",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
