package handler

import (
	"net/http"
	"time"

	"github.com/medicare-companion/adherence-api/internal/application/misscheck"
)

// MissedCheckHandler handles the cron trigger endpoint.
type MissedCheckHandler struct {
	svc    misscheck.Service
	cfgErr error // non-nil when required credentials were missing at startup
	now    func() time.Time
}

func NewMissedCheckHandler(svc misscheck.Service, cfgErr error) *MissedCheckHandler {
	return &MissedCheckHandler{svc: svc, cfgErr: cfgErr, now: time.Now}
}

// Check runs one missed-dose scan. The external scheduler calls this on a
// fixed cadence; the lookback window keeps repeated invocations from
// re-scanning the same schedules.
func (h *MissedCheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.cfgErr != nil {
		writeJSON(w, http.StatusInternalServerError, ConfigErrorEnvelope{
			Error:   "Configuration Error",
			Details: h.cfgErr.Error(),
		})
		return
	}

	res, err := h.svc.Run(r.Context(), h.now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, InternalErrorEnvelope{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
		return
	}

	if res.NoCandidates {
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "No schedules found for this window."})
		return
	}
	writeJSON(w, http.StatusOK, CheckEnvelope{
		Message:      "Check complete",
		ReportsCount: len(res.Reports),
		Reports:      res.Reports,
	})
}
