package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	alertapp "github.com/medicare-companion/adherence-api/internal/application/alert"
	"github.com/medicare-companion/adherence-api/internal/application/misscheck"
	"github.com/medicare-companion/adherence-api/internal/config"
	"github.com/medicare-companion/adherence-api/internal/transport/http/handler"
	appmiddleware "github.com/medicare-companion/adherence-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.MethodNotAllowed(handler.MethodNotAllowed)

	checkSvc := misscheck.NewService(misscheck.ServiceDeps{
		ScheduleRepo:   deps.ScheduleRepo,
		MedicationRepo: deps.MedicationRepo,
		DoseLogRepo:    deps.DoseLogRepo,
		CaretakerRepo:  deps.CaretakerRepo,
		ProfileRepo:    deps.ProfileRepo,
		AuditRepo:      deps.AuditRepo,
		Mailer:         deps.Mailer,
		SMSSender:      deps.SMSSender,
		Location:       deps.Location,
		LookbackLow:    time.Duration(cfg.LookbackLowMinutes) * time.Minute,
		LookbackHigh:   time.Duration(cfg.LookbackHighMinutes) * time.Minute,
		From:           cfg.MailFrom,
	})
	alertSvc := alertapp.NewService(deps.Mailer, cfg.MailFrom)

	healthH := handler.NewHealthHandler()
	checkH := handler.NewMissedCheckHandler(checkSvc, deps.ConfigErr)
	alertH := handler.NewAlertHandler(alertSvc, deps.ConfigErr)

	// 5 requests/second, burst of 10 — applied to the public send endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		// The external scheduler's trigger. GET for cron-style callers,
		// POST for the hardened variant.
		r.Get("/cron/check-missed", checkH.Check)
		r.Post("/cron/check-missed", checkH.Check)

		r.With(sensitiveRL.Limit).Post("/alerts/reminder", alertH.Reminder)
		r.With(sensitiveRL.Limit).Post("/alerts/critical", alertH.Critical)
	})

	return r
}
