package http

import (
	"context"
	"time"

	"github.com/medicare-companion/adherence-api/internal/domain"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/dynamo"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/mail"
	"github.com/medicare-companion/adherence-api/internal/infrastructure/sns"
)

// AuditWriter records dispatched alerts. Interface-typed here so that an
// unset field stays nil all the way into the service, which treats nil as
// auditing disabled.
type AuditWriter interface {
	Put(ctx context.Context, a *domain.AlertAudit) error
}

// Deps holds all infrastructure dependencies for the router. They are
// constructed once in main and passed in explicitly — no package-level
// client state — so tests can substitute any collaborator.
type Deps struct {
	ScheduleRepo   *dynamo.ScheduleRepo
	MedicationRepo *dynamo.MedicationRepo
	DoseLogRepo    *dynamo.DoseLogRepo
	CaretakerRepo  *dynamo.CaretakerRepo
	ProfileRepo    *dynamo.ProfileRepo
	AuditRepo      AuditWriter   // optional
	Mailer         mail.Sender
	SMSSender      sns.SMSSender // optional

	// Location is the civil zone schedules are expressed in.
	Location *time.Location

	// ConfigErr carries a startup credential-validation failure; when set,
	// the alerting endpoints answer with a Configuration Error instead of
	// touching collaborators.
	ConfigErr error
}
