package booking

import (
	"context"
	"strings"
	"sync"

	"github.com/buburuebi/healthcare-booking/internal/catalog"
	"github.com/buburuebi/healthcare-booking/internal/notify"
	"github.com/buburuebi/healthcare-booking/internal/payments"
	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

// Step is the wizard's position in the three-step flow.
type Step int

const (
	StepDetails Step = iota + 1
	StepPayment
	StepConfirm
	// StepSubmitted is terminal: the booking went through.
	StepSubmitted
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirmation"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Gateway turns a completed draft into a persisted, notified booking.
type Gateway interface {
	Submit(ctx context.Context, d Draft, svc *catalog.Service) (bookingID string, err error)
}

// SubmissionOutcome is what a successful Submit hands back to the caller.
type SubmissionOutcome struct {
	BookingID string `json:"bookingId"`
	// WhatsAppURL is the wa.me deep link for the post-booking redirect.
	// Non-browser callers may ignore it.
	WhatsAppURL string `json:"whatsappUrl"`
}

// State is a read-only snapshot of a wizard.
type State struct {
	Step             Step   `json:"currentStep"`
	StepName         string `json:"stepName"`
	FormData         Draft  `json:"formData"`
	PaymentCompleted bool   `json:"paymentCompleted"`
	LastError        string `json:"error,omitempty"`
}

// Wizard owns one booking session's flow: current step, committed form data
// and the derived flags. All methods are safe for concurrent use; at most
// one payment or submission runs at a time per wizard, and results that
// arrive after a Reset are discarded.
type Wizard struct {
	mu sync.Mutex

	service   *catalog.Service
	processor payments.Processor
	gateway   Gateway
	logger    *logging.Logger

	step             Step
	form             Draft
	paymentCompleted bool
	lastError        string

	inFlight   bool
	generation uint64
}

// NewWizard creates a wizard at step 1 for the given service.
func NewWizard(svc *catalog.Service, processor payments.Processor, gateway Gateway, logger *logging.Logger) *Wizard {
	if logger == nil {
		logger = logging.Default()
	}
	return &Wizard{
		service:   svc,
		processor: processor,
		gateway:   gateway,
		logger:    logger,
		step:      StepDetails,
		form:      Draft{ServiceID: svc.ID},
	}
}

// Service returns the service this wizard books.
func (w *Wizard) Service() *catalog.Service {
	return w.service
}

// Snapshot returns the current state.
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Wizard) snapshotLocked() State {
	form := w.form
	form.CheckedOptions = append([]string(nil), w.form.CheckedOptions...)
	return State{
		Step:             w.step,
		StepName:         w.step.String(),
		FormData:         form,
		PaymentCompleted: w.paymentCompleted,
		LastError:        w.lastError,
	}
}

// ProceedToPayment validates the working draft against the step 1 rules and,
// on success, commits it and advances to the payment step. On failure the
// wizard stays at step 1 with an inline error and nothing is committed.
func (w *Wizard) ProceedToPayment(working Draft) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDetails {
		return w.snapshotLocked(), ErrInvalidTransition
	}

	if !IsStep1Valid(w.service.Type, working) {
		w.lastError = "Please fill in all required fields"
		return w.snapshotLocked(), ErrStep1Incomplete
	}

	// All-or-nothing copy of the step 1 fields.
	w.form.Name = working.Name
	w.form.Email = working.Email
	w.form.Phone = working.Phone
	w.form.SelectedTest = working.SelectionSummary()
	w.form.Symptoms = working.Symptoms
	w.form.Location = working.Location
	w.form.TreatmentLocation = working.TreatmentLocation
	w.form.CheckedOptions = append([]string(nil), working.CheckedOptions...)
	if w.form.SelectedTest != "" {
		w.form.Symptoms = ""
	}

	w.lastError = ""
	w.step = StepPayment
	return w.snapshotLocked(), nil
}

// CompletePayment runs the payment round trip for the chosen slot and, on
// success, commits the slot and advances to the confirmation step. The slot
// must be one of the service's available slots. A failure keeps the wizard at
// step 2 so the patient can retry.
func (w *Wizard) CompletePayment(ctx context.Context, slot string) (State, error) {
	w.mu.Lock()
	if w.step != StepPayment {
		defer w.mu.Unlock()
		return w.snapshotLocked(), ErrInvalidTransition
	}
	if w.inFlight {
		defer w.mu.Unlock()
		return w.snapshotLocked(), ErrOperationInFlight
	}
	if strings.TrimSpace(slot) == "" || !w.service.HasSlot(slot) {
		w.lastError = "Please select a valid time slot"
		defer w.mu.Unlock()
		return w.snapshotLocked(), ErrInvalidSlot
	}

	w.inFlight = true
	gen := w.generation
	charge := payments.Charge{
		ServiceID:   w.service.ID,
		ServiceName: w.service.Name,
		TimeSlot:    slot,
		Amount:      w.chargeAmountLocked(),
	}
	w.mu.Unlock()

	err := w.processor.Charge(ctx, charge)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if gen != w.generation {
		// The session was reset while the charge was in flight; the result
		// must not touch the new session's state.
		return w.snapshotLocked(), ErrSessionReset
	}

	if err != nil {
		w.logger.Warn("payment step failed", "service_id", w.service.ID, "error", err)
		w.lastError = "Payment failed. Please try again."
		return w.snapshotLocked(), ErrPaymentFailed
	}

	w.form.TimeSlot = slot
	w.paymentCompleted = true
	w.lastError = ""
	w.step = StepConfirm
	return w.snapshotLocked(), nil
}

// chargeAmountLocked picks the amount shown for this service's payment step.
func (w *Wizard) chargeAmountLocked() int64 {
	if w.form.TreatmentLocation == TreatmentAtHome || w.service.Type == catalog.TypeHome {
		return w.service.DepositAmount
	}
	if w.service.ConsultationFee > 0 {
		return w.service.ConsultationFee
	}
	return w.service.DepositAmount
}

// Submit re-checks the committed draft and hands it to the gateway. On
// success the wizard reaches its terminal state and the outcome carries the
// booking id plus the WhatsApp redirect link. On failure the wizard stays at
// the confirmation step for a retry.
func (w *Wizard) Submit(ctx context.Context) (SubmissionOutcome, State, error) {
	w.mu.Lock()
	if w.step != StepConfirm {
		defer w.mu.Unlock()
		return SubmissionOutcome{}, w.snapshotLocked(), ErrInvalidTransition
	}
	if w.inFlight {
		defer w.mu.Unlock()
		return SubmissionOutcome{}, w.snapshotLocked(), ErrOperationInFlight
	}
	// Defensive re-check; these were validated at step 1.
	if w.form.Name == "" || w.form.Email == "" {
		w.lastError = "Missing required information"
		defer w.mu.Unlock()
		return SubmissionOutcome{}, w.snapshotLocked(), ErrMissingInfo
	}

	w.inFlight = true
	gen := w.generation
	draft := w.form
	w.mu.Unlock()

	bookingID, err := w.gateway.Submit(ctx, draft, w.service)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if gen != w.generation {
		return SubmissionOutcome{}, w.snapshotLocked(), ErrSessionReset
	}

	if err != nil {
		w.logger.Error("booking submission failed", "service_id", w.service.ID, "error", err)
		w.lastError = "Failed to complete booking. Please try again."
		return SubmissionOutcome{}, w.snapshotLocked(), err
	}

	greeting := notify.PatientGreeting(
		w.service.DoctorName, w.service.Name,
		w.form.Name, w.form.Email, w.form.TimeSlot,
	)

	w.lastError = ""
	w.step = StepSubmitted
	outcome := SubmissionOutcome{
		BookingID:   bookingID,
		WhatsAppURL: notify.WhatsAppLink(w.service.DoctorWhatsApp, greeting),
	}
	return outcome, w.snapshotLocked(), nil
}

// Back returns from the payment step to the details step. Committed field
// values are kept; no validation runs.
func (w *Wizard) Back() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPayment {
		return w.snapshotLocked(), ErrInvalidTransition
	}
	w.step = StepDetails
	w.lastError = ""
	return w.snapshotLocked(), nil
}

// Reset reinitializes the wizard for the same service. Any in-flight payment
// or submission result is discarded when it lands.
func (w *Wizard) Reset() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.step = StepDetails
	w.form = Draft{ServiceID: w.service.ID}
	w.paymentCompleted = false
	w.lastError = ""
	return w.snapshotLocked()
}
