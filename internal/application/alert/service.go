package alert

import (
	"context"
	"fmt"

	"github.com/medicare-companion/adherence-api/internal/domain"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/mail"
	"github.com/medicare-companion/adherence-api/internal/pkg/validate"
)

// Service sends on-demand caretaker emails (the non-cron alert endpoints).
type Service interface {
	SendReminder(ctx context.Context, req domain.ReminderRequest) (string, error)
	SendCritical(ctx context.Context, req domain.CriticalAlertRequest) (string, error)
}

type service struct {
	mailer mail.Sender
	from   string
}

func NewService(mailer mail.Sender, from string) Service {
	return &service{mailer: mailer, from: from}
}

func (s *service) SendReminder(ctx context.Context, req domain.ReminderRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	return s.mailer.Send(ctx, mail.Message{
		From:    s.from,
		To:      []string{req.To},
		Subject: fmt.Sprintf("Medication Reminder: %s", req.MedicineName),
		HTML:    ReminderHTML(req.PatientName, req.MedicineName),
	})
}

func (s *service) SendCritical(ctx context.Context, req domain.CriticalAlertRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	return s.mailer.Send(ctx, mail.Message{
		From:    s.from,
		To:      []string{req.To},
		Subject: fmt.Sprintf("%s for %s", CriticalSubject, req.PatientName),
		HTML:    CriticalNoticeHTML(req.PatientName, req.MedicineName, req.ScheduledTime),
	})
}
