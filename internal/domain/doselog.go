package domain

import "time"

// Dose log status values.
const (
	DoseTaken  = "taken"
	DoseMissed = "missed"
)

// DoseLog records whether a schedule's dose was taken on a given date.
// The table key is (schedule_id, date), so there is at most one log per
// schedule per day — the existence of a row is the ground truth the missed
// check keys on.
type DoseLog struct {
	ScheduleID string     `json:"schedule_id" dynamodbav:"schedule_id"`
	Date       string     `json:"date" dynamodbav:"date"` // YYYY-MM-DD civil date
	Status     string     `json:"status" dynamodbav:"status"`
	TakenAt    *time.Time `json:"taken_at,omitempty" dynamodbav:"taken_at"`
}
