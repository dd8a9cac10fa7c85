package domain

import "time"

// CheckReportEntry is one dispatched alert in a check-missed invocation's
// response. Field names match the cron trigger's JSON contract.
type CheckReportEntry struct {
	ScheduleID string `json:"scheduleId"`
	EmailID    string `json:"emailId"`
}

// AlertAudit is the advisory record written after a successful dispatch.
type AlertAudit struct {
	AuditID    string    `json:"id" dynamodbav:"audit_id"`
	ScheduleID string    `json:"schedule_id" dynamodbav:"schedule_id"`
	Date       string    `json:"date" dynamodbav:"date"`
	Recipient  string    `json:"recipient" dynamodbav:"recipient"`
	EmailID    string    `json:"email_id" dynamodbav:"email_id"`
	SentAt     time.Time `json:"sent_at" dynamodbav:"sent_at"`
}

// ReminderRequest is the body of the on-demand reminder endpoint.
type ReminderRequest struct {
	To           string `json:"to" validate:"required,email"`
	PatientName  string `json:"patientName" validate:"required"`
	MedicineName string `json:"medicineName" validate:"required"`
}

// CriticalAlertRequest is the body of the on-demand critical-alert endpoint.
type CriticalAlertRequest struct {
	To            string `json:"to" validate:"required,email"`
	PatientName   string `json:"patientName" validate:"required"`
	MedicineName  string `json:"medicineName" validate:"required"`
	ScheduledTime string `json:"scheduledTime" validate:"required"`
}
