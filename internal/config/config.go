package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	MailAPIURL string
	MailAPIKey string
	MailFrom   string

	SNSRegion string

	// AlertTimezone is the IANA zone schedules are expressed in. Dose times
	// are civil times in the patient's zone, never the host's local zone.
	AlertTimezone       string
	LookbackLowMinutes  int
	LookbackHighMinutes int

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Medications string
	Schedules   string
	DoseLogs    string
	Caretakers  string
	Profiles    string
	AlertAudit  string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Medications: getEnv("DYNAMO_TABLE_MEDICATIONS", "medications"),
			Schedules:   getEnv("DYNAMO_TABLE_SCHEDULES", "medication_schedules"),
			DoseLogs:    getEnv("DYNAMO_TABLE_DOSE_LOGS", "medication_logs"),
			Caretakers:  getEnv("DYNAMO_TABLE_CARETAKERS", "caretakers"),
			Profiles:    getEnv("DYNAMO_TABLE_PROFILES", "profiles"),
			AlertAudit:  getEnv("DYNAMO_TABLE_ALERT_AUDIT", "alert_audit"),
		},

		MailAPIURL: getEnv("MAIL_API_URL", "https://api.resend.com"),
		MailAPIKey: getEnv("MAIL_API_KEY", ""),
		MailFrom:   getEnv("MAIL_FROM", "onboarding@resend.dev"),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		AlertTimezone:       getEnv("ALERT_TIMEZONE", "UTC"),
		LookbackLowMinutes:  getEnvInt("LOOKBACK_LOW_MINUTES", 90),
		LookbackHighMinutes: getEnvInt("LOOKBACK_HIGH_MINUTES", 60),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// Validate checks that every credential the check pipeline depends on is
// present. It returns a single error naming all missing variables so the
// cron endpoint can surface them in one response.
func (c *Config) Validate() error {
	var missing []string
	if c.AWSAccessKeyID == "" {
		missing = append(missing, "AWS_ACCESS_KEY_ID")
	}
	if c.AWSSecretKey == "" {
		missing = append(missing, "AWS_SECRET_ACCESS_KEY")
	}
	if c.MailAPIKey == "" {
		missing = append(missing, "MAIL_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
