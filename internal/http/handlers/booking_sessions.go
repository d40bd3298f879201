// Package handlers contains the HTTP handlers that sit above the booking
// wizard and the session store.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buburuebi/healthcare-booking/internal/booking"
	"github.com/buburuebi/healthcare-booking/internal/bookings"
	"github.com/buburuebi/healthcare-booking/internal/catalog"
	"github.com/buburuebi/healthcare-booking/internal/gateway"
	"github.com/buburuebi/healthcare-booking/internal/observability/metrics"
	"github.com/buburuebi/healthcare-booking/internal/payments"
	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

// BookingSessions exposes the three-step booking wizard over HTTP. Each
// session wraps one wizard; the session id travels in the URL.
type BookingSessions struct {
	sessions  *booking.SessionStore
	catalog   *catalog.Catalog
	processor payments.Processor
	gateway   booking.Gateway
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger
}

// NewBookingSessions creates the wizard session handler.
func NewBookingSessions(
	sessions *booking.SessionStore,
	cat *catalog.Catalog,
	processor payments.Processor,
	gw booking.Gateway,
	m *metrics.BookingMetrics,
	logger *logging.Logger,
) *BookingSessions {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingSessions{
		sessions:  sessions,
		catalog:   cat,
		processor: processor,
		gateway:   gw,
		metrics:   m,
		logger:    logger,
	}
}

// Routes mounts the session endpoints on r.
func (h *BookingSessions) Routes(r chi.Router) {
	r.Post("/", h.CreateSession)
	r.Route("/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
		r.Post("/details", h.SubmitDetails)
		r.Post("/payment", h.CompletePayment)
		r.Post("/confirm", h.ConfirmBooking)
		r.Post("/back", h.GoBack)
		r.Post("/reset", h.ResetSession)
	})
}

type createSessionRequest struct {
	ServiceID string `json:"serviceId"`
}

type sessionResponse struct {
	SessionID string        `json:"sessionId"`
	State     booking.State `json:"state"`
}

type confirmResponse struct {
	SessionID string                    `json:"sessionId"`
	Outcome   booking.SubmissionOutcome `json:"outcome"`
	State     booking.State             `json:"state"`
}

// CreateSession handles POST /api/booking/sessions requests.
func (h *BookingSessions) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.catalog.Get(req.ServiceID)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Unknown service")
		return
	}

	wizard := booking.NewWizard(svc, h.processor, h.gateway, h.logger)
	id := h.sessions.Put(wizard)

	h.logger.Info("booking session created", "session_id", id, "service_id", svc.ID)
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, State: wizard.Snapshot()})
}

// GetSession handles GET /api/booking/sessions/{sessionID} requests.
func (h *BookingSessions) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	wizard, err := h.sessions.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, State: wizard.Snapshot()})
}

// DeleteSession handles DELETE /api/booking/sessions/{sessionID} requests.
func (h *BookingSessions) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(chi.URLParam(r, "sessionID"))
	w.WriteHeader(http.StatusNoContent)
}

// SubmitDetails handles POST /api/booking/sessions/{sessionID}/details. The
// body is the working draft; on success the wizard moves to the payment step.
func (h *BookingSessions) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	wizard, err := h.sessions.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking session not found")
		return
	}

	var working booking.Draft
	if err := json.NewDecoder(r.Body).Decode(&working); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := wizard.ProceedToPayment(working)
	if err != nil {
		h.writeWizardError(w, id, state, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, State: state})
}

type paymentRequest struct {
	TimeSlot string `json:"timeSlot"`
}

// CompletePayment handles POST /api/booking/sessions/{sessionID}/payment.
func (h *BookingSessions) CompletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	wizard, err := h.sessions.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking session not found")
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := wizard.CompletePayment(r.Context(), req.TimeSlot)
	if err != nil {
		if errors.Is(err, booking.ErrPaymentFailed) {
			h.metrics.ObservePayment("failed")
		}
		h.writeWizardError(w, id, state, err)
		return
	}

	h.metrics.ObservePayment("succeeded")
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, State: state})
}

// ConfirmBooking handles POST /api/booking/sessions/{sessionID}/confirm. On
// success the response carries the booking id and the WhatsApp redirect link.
func (h *BookingSessions) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	wizard, err := h.sessions.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking session not found")
		return
	}

	outcome, state, err := wizard.Submit(r.Context())
	if err != nil {
		h.writeWizardError(w, id, state, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmResponse{SessionID: id, Outcome: outcome, State: state})
}

// GoBack handles POST /api/booking/sessions/{sessionID}/back.
func (h *BookingSessions) GoBack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	wizard, err := h.sessions.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking session not found")
		return
	}

	state, err := wizard.Back()
	if err != nil {
		h.writeWizardError(w, id, state, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, State: state})
}

// ResetSession handles POST /api/booking/sessions/{sessionID}/reset.
func (h *BookingSessions) ResetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	wizard, err := h.sessions.Get(id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, State: wizard.Reset()})
}

type wizardErrorResponse struct {
	SessionID string        `json:"sessionId"`
	Error     string        `json:"error"`
	State     booking.State `json:"state"`
}

// writeWizardError maps wizard and gateway errors onto HTTP statuses and
// always includes the current state so the client can render inline errors.
func (h *BookingSessions) writeWizardError(w http.ResponseWriter, id string, state booking.State, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, booking.ErrStep1Incomplete),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrMissingInfo),
		errors.Is(err, bookings.ErrMissingFields),
		errors.Is(err, bookings.ErrInvalidDraft):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrPaymentFailed):
		status = http.StatusPaymentRequired
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrOperationInFlight),
		errors.Is(err, booking.ErrSessionReset):
		status = http.StatusConflict
	case errors.Is(err, gateway.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, gateway.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, gateway.ErrRejected):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("wizard operation failed", "session_id", id, "error", err)
	}

	writeJSON(w, status, wizardErrorResponse{SessionID: id, Error: err.Error(), State: state})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
