package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/medicare-companion/adherence-api/internal/config"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/dynamo"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/mail"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/sns"
	transporthttp "github.com/medicare-companion/adherence-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Missing credentials don't crash the process: the server comes up and
	// the alerting endpoints report the configuration error per request.
	cfgErr := cfg.Validate()
	if cfgErr != nil {
		log.Printf("WARN: %v", cfgErr)
	}

	loc, err := time.LoadLocation(cfg.AlertTimezone)
	if err != nil {
		log.Fatalf("invalid ALERT_TIMEZONE %q: %v", cfg.AlertTimezone, err)
	}

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	mailer := mail.NewClient(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		ScheduleRepo:   dynamo.NewScheduleRepo(dynamoClient, cfg.DynamoTables.Schedules),
		MedicationRepo: dynamo.NewMedicationRepo(dynamoClient, cfg.DynamoTables.Medications),
		DoseLogRepo:    dynamo.NewDoseLogRepo(dynamoClient, cfg.DynamoTables.DoseLogs),
		CaretakerRepo:  dynamo.NewCaretakerRepo(dynamoClient, cfg.DynamoTables.Caretakers),
		ProfileRepo:    dynamo.NewProfileRepo(dynamoClient, cfg.DynamoTables.Profiles),
		AuditRepo:      dynamo.NewAlertAuditRepo(dynamoClient, cfg.DynamoTables.AlertAudit),
		Mailer:         mailer,
		SMSSender:      smsSender,
		Location:       loc,
		ConfigErr:      cfgErr,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, tz=%s)", cfg.AppPort, cfg.AppEnv, cfg.AlertTimezone)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
