package domain

import "time"

type Medication struct {
	MedicationID string    `json:"id" dynamodbav:"medication_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	UserID       string    `json:"user_id" dynamodbav:"user_id"` // the patient's account
	Dosage       string    `json:"dosage,omitempty" dynamodbav:"dosage"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}
