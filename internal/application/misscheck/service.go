package misscheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/medicare-companion/adherence-api/internal/application/alert"
	"github.com/medicare-companion/adherence-api/internal/domain"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/mail"
	"github.com/medicare-companion/adherence-api/internal/pkg/id"
)

// Service runs one missed-dose check over the current lookback window.
type Service interface {
	Run(ctx context.Context, now time.Time) (*Result, error)
}

// Result is the outcome of one invocation. NoCandidates means the window
// held no schedules at all; Reports holds one entry per dispatched alert.
type Result struct {
	NoCandidates bool
	Reports      []domain.CheckReportEntry
}

type scheduleStore interface {
	ListInWindow(ctx context.Context, start, end string) ([]domain.Schedule, error)
}

type medicationStore interface {
	Get(ctx context.Context, medicationID string) (*domain.Medication, error)
}

type doseLogStore interface {
	Find(ctx context.Context, scheduleID, date string) (*domain.DoseLog, error)
}

type caretakerStore interface {
	Get(ctx context.Context, userID string) (*domain.Caretaker, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
}

type auditStore interface {
	Put(ctx context.Context, a *domain.AlertAudit) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	schedules   scheduleStore
	medications medicationStore
	logs        doseLogStore
	caretakers  caretakerStore
	profiles    profileStore
	audit       auditStore
	mailer      mail.Sender
	sms         smsSender

	loc          *time.Location
	lookbackLow  time.Duration
	lookbackHigh time.Duration
	from         string
	log          *slog.Logger
}

type ServiceDeps struct {
	ScheduleRepo   scheduleStore
	MedicationRepo medicationStore
	DoseLogRepo    doseLogStore
	CaretakerRepo  caretakerStore
	ProfileRepo    profileStore
	AuditRepo      auditStore // optional
	Mailer         mail.Sender
	SMSSender      smsSender // optional

	Location     *time.Location
	LookbackLow  time.Duration
	LookbackHigh time.Duration
	From         string
	Logger       *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		schedules:    deps.ScheduleRepo,
		medications:  deps.MedicationRepo,
		logs:         deps.DoseLogRepo,
		caretakers:   deps.CaretakerRepo,
		profiles:     deps.ProfileRepo,
		audit:        deps.AuditRepo,
		mailer:       deps.Mailer,
		sms:          deps.SMSSender,
		loc:          deps.Location,
		lookbackLow:  deps.LookbackLow,
		lookbackHigh: deps.LookbackHigh,
		from:         deps.From,
		log:          logger,
	}
}

// outcome tags what happened to one schedule. Skips are expected results,
// not errors — only the schedule fetch itself can fail the invocation.
type outcome int

const (
	outcomeDispatched outcome = iota
	outcomeTaken
	outcomeSkipped    // per-schedule dependency failure or missing related data
	outcomeSuppressed // caretaker opted out
)

// Run scans schedules in the lookback window and dispatches one alert per
// genuine miss. Schedules are processed strictly one at a time; a failure on
// one never blocks the rest.
func (s *service) Run(ctx context.Context, now time.Time) (*Result, error) {
	win := ComputeWindow(now, s.loc, s.lookbackLow, s.lookbackHigh)
	s.log.Info("checking for missed doses",
		"window_start", win.Start, "window_end", win.End, "date", win.Today)

	schedules, err := s.schedules.ListInWindow(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("fetch schedules: %w", err)
	}
	if len(schedules) == 0 {
		return &Result{NoCandidates: true}, nil
	}

	reports := make([]domain.CheckReportEntry, 0, len(schedules))
	for _, sched := range schedules {
		entry, oc := s.evaluate(ctx, sched, win, now)
		if oc == outcomeDispatched {
			reports = append(reports, *entry)
		}
	}
	return &Result{Reports: reports}, nil
}

// evaluate runs check → resolve → dispatch for a single schedule.
func (s *service) evaluate(ctx context.Context, sched domain.Schedule, win Window, now time.Time) (*domain.CheckReportEntry, outcome) {
	// A schedule in the late-evening segment of a wrapped window was due on
	// the previous civil day, and its log is keyed to that day.
	date := win.DateFor(sched.Time)

	_, err := s.logs.Find(ctx, sched.ScheduleID, date)
	if err == nil {
		// A log exists — the dose was handled.
		return nil, outcomeTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.Warn("dose log lookup failed, skipping schedule",
			"schedule_id", sched.ScheduleID, "err", err)
		return nil, outcomeSkipped
	}

	s.log.Info("miss detected", "schedule_id", sched.ScheduleID, "date", date)

	med, err := s.medications.Get(ctx, sched.MedicationID)
	if err != nil {
		s.log.Warn("could not resolve medication, skipping schedule",
			"schedule_id", sched.ScheduleID, "medication_id", sched.MedicationID, "err", err)
		return nil, outcomeSkipped
	}
	if med.UserID == "" {
		s.log.Warn("medication has no owning user, skipping schedule",
			"schedule_id", sched.ScheduleID, "medication_id", med.MedicationID)
		return nil, outcomeSkipped
	}

	acct, err := s.caretakers.Get(ctx, med.UserID)
	if err != nil {
		s.log.Warn("could not resolve caretaker account, skipping schedule",
			"schedule_id", sched.ScheduleID, "user_id", med.UserID, "err", err)
		return nil, outcomeSkipped
	}
	if acct.Email == "" {
		s.log.Warn("caretaker account has no email, skipping schedule",
			"schedule_id", sched.ScheduleID, "user_id", med.UserID)
		return nil, outcomeSkipped
	}

	settings := domain.DefaultNotificationSettings()
	if acct.NotificationSettings != nil {
		settings = *acct.NotificationSettings
	}
	if !settings.EmailNotifications || !settings.MissedAlerts {
		s.log.Info("alerts disabled in settings, skipping",
			"schedule_id", sched.ScheduleID, "user_id", med.UserID)
		return nil, outcomeSuppressed
	}

	patient := "the patient"
	if p, err := s.profiles.Get(ctx, med.UserID); err == nil && p.PatientName != "" {
		patient = p.PatientName
	}

	emailID, err := s.mailer.Send(ctx, mail.Message{
		From:    s.from,
		To:      []string{acct.Email},
		Subject: alert.CriticalSubject,
		HTML:    alert.MissedDoseHTML(patient, med.Name, sched.Time, now.In(s.loc).Format("15:04:05")),
	})
	if err != nil {
		// No retry here: the next invocation's window re-covers this schedule
		// until a log is written.
		s.log.Error("alert dispatch failed, skipping schedule",
			"schedule_id", sched.ScheduleID, "err", err)
		return nil, outcomeSkipped
	}
	s.log.Info("alert dispatched",
		"schedule_id", sched.ScheduleID, "email_id", emailID)

	if s.audit != nil {
		a := &domain.AlertAudit{
			AuditID:    id.New(),
			ScheduleID: sched.ScheduleID,
			Date:       date,
			Recipient:  acct.Email,
			EmailID:    emailID,
			SentAt:     now,
		}
		if err := s.audit.Put(ctx, a); err != nil {
			s.log.Warn("audit write failed", "schedule_id", sched.ScheduleID, "err", err)
		}
	}

	if s.sms != nil && acct.Phone != nil && *acct.Phone != "" {
		text := fmt.Sprintf("MediCare alert: %s missed their %s dose of %s.", patient, sched.Time, med.Name)
		if err := s.sms.SendSMS(ctx, *acct.Phone, text); err != nil {
			s.log.Warn("sms fallback failed", "schedule_id", sched.ScheduleID, "err", err)
		}
	}

	return &domain.CheckReportEntry{ScheduleID: sched.ScheduleID, EmailID: emailID}, outcomeDispatched
}
