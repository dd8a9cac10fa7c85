package domain

// Profile carries the patient display name shown in alert bodies.
type Profile struct {
	UserID      string `json:"id" dynamodbav:"user_id"`
	PatientName string `json:"patient_name" dynamodbav:"patient_name"`
}
