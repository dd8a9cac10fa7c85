package domain

import "time"

// Caretaker is the account that receives alerts for a patient's misses.
type Caretaker struct {
	UserID               string                `json:"id" dynamodbav:"user_id"`
	Email                string                `json:"email" dynamodbav:"email"`
	Phone                *string               `json:"phone,omitempty" dynamodbav:"phone"`
	NotificationSettings *NotificationSettings `json:"notification_settings,omitempty" dynamodbav:"notification_settings"`
	CreatedAt            time.Time             `json:"created" dynamodbav:"created_at"`
}

// NotificationSettings are per-account alert preferences. A nil settings
// struct on the account means the user never touched them; callers apply
// DefaultNotificationSettings in that case.
type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications" dynamodbav:"email_notifications"`
	MissedAlerts       bool `json:"missedAlerts" dynamodbav:"missed_alerts"`
}

// DefaultNotificationSettings returns the opt-in defaults applied when an
// account carries no settings at all.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{EmailNotifications: true, MissedAlerts: true}
}
