package domain

import "time"

// Schedule is a recurring daily dose time for one medication.
// Time carries no date component; the schedule fires every day.
type Schedule struct {
	ScheduleID   string    `json:"id" dynamodbav:"schedule_id"`
	MedicationID string    `json:"medication_id" dynamodbav:"medication_id"`
	Time         string    `json:"time" dynamodbav:"schedule_time"` // HH:MM:SS, zero-padded
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}
