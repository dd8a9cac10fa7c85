package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medicare-companion/adherence-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins:      []string{"*"},
		MailFrom:            "onboarding@resend.dev",
		LookbackLowMinutes:  90,
		LookbackHighMinutes: 60,
	}
}

func TestRouter_MethodNotAllowedOnCronEndpoint(t *testing.T) {
	router := NewRouter(testConfig(), &Deps{Location: time.UTC})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/cron/check-missed", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method not allowed")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouter_HealthPing(t *testing.T) {
	router := NewRouter(testConfig(), &Deps{Location: time.UTC})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/health-check/ping", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	router := NewRouter(testConfig(), &Deps{Location: time.UTC})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/nope", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
