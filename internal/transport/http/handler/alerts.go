package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	alertapp "github.com/medicare-companion/adherence-api/internal/application/alert"
	"github.com/medicare-companion/adherence-api/internal/domain"
)

// AlertHandler handles the on-demand caretaker email endpoints.
type AlertHandler struct {
	svc    alertapp.Service
	cfgErr error
}

func NewAlertHandler(svc alertapp.Service, cfgErr error) *AlertHandler {
	return &AlertHandler{svc: svc, cfgErr: cfgErr}
}

func (h *AlertHandler) Reminder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "Recipient address (to) is required")
		return
	}
	if h.cfgErr != nil {
		writeJSON(w, http.StatusInternalServerError, ConfigErrorEnvelope{
			Error: "Configuration Error", Details: h.cfgErr.Error(),
		})
		return
	}
	emailID, err := h.svc.SendReminder(r.Context(), req)
	if err != nil {
		h.sendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EmailEnvelope{ID: emailID})
}

func (h *AlertHandler) Critical(w http.ResponseWriter, r *http.Request) {
	var req domain.CriticalAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "Recipient address (to) is required")
		return
	}
	if h.cfgErr != nil {
		writeJSON(w, http.StatusInternalServerError, ConfigErrorEnvelope{
			Error: "Configuration Error", Details: h.cfgErr.Error(),
		})
		return
	}
	emailID, err := h.svc.SendCritical(r.Context(), req)
	if err != nil {
		h.sendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EmailEnvelope{ID: emailID})
}

// sendError maps a send failure: validation errors are the caller's fault,
// everything else is the upstream transport's.
func (h *AlertHandler) sendError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrBadRequest) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusBadGateway, err.Error())
}
