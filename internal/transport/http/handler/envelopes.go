package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medicare-companion/adherence-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CheckEnvelope wraps a completed missed-dose check.
type CheckEnvelope struct {
	Message      string                    `json:"message"`
	ReportsCount int                       `json:"reportsCount"`
	Reports      []domain.CheckReportEntry `json:"reports"`
}

// ConfigErrorEnvelope reports missing required credentials.
type ConfigErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// InternalErrorEnvelope reports a fatal dependency failure.
type InternalErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// EmailEnvelope wraps a single transactional send.
type EmailEnvelope struct {
	ID string `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// MethodNotAllowed is the JSON 405 handler wired into the router.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
