package bookings

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/buburuebi/healthcare-booking/internal/booking"
	"github.com/buburuebi/healthcare-booking/internal/catalog"
	"github.com/buburuebi/healthcare-booking/internal/notify"
	"github.com/buburuebi/healthcare-booking/internal/observability/metrics"
	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

var bookingsTracer = otel.Tracer("buburuebi.internal.bookings")

// Service records bookings and dispatches the confirmation notifications.
type Service struct {
	repo      Repository
	catalog   *catalog.Catalog
	email     notify.EmailSender
	messenger notify.MessageSender
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger

	now func() time.Time // overridable in tests
}

// NewService constructs a bookings service. Email and messenger may be nil;
// notification dispatch is best-effort either way.
func NewService(repo Repository, cat *catalog.Catalog, email notify.EmailSender, messenger notify.MessageSender, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("bookings: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:      repo,
		catalog:   cat,
		email:     email,
		messenger: messenger,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Confirm validates the request, records the booking and dispatches the
// patient email and the doctor WhatsApp message. Notification failures are
// logged and counted but never fail the booking; the stored record is the
// authoritative success signal.
func (s *Service) Confirm(ctx context.Context, req *BookingRequest) (*Booking, error) {
	start := s.now()
	ctx, span := bookingsTracer.Start(ctx, "bookings.confirm")
	defer span.End()
	span.SetAttributes(
		attribute.String("buburuebi.service_id", req.ServiceID),
	)

	if !req.HasRequiredFields() {
		s.metrics.ObserveBooking("rejected")
		return nil, ErrMissingFields
	}

	serviceType := s.serviceType(req.ServiceID)
	if result := booking.ValidateBookingData(serviceType, req.Draft()); !result.IsValid {
		s.metrics.ObserveBooking("rejected")
		return nil, fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(result.Errors, "; "))
	}

	b := &Booking{
		ID:                newBookingID(s.now()),
		ServiceID:         req.ServiceID,
		ServiceName:       req.ServiceName,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		SelectedTest:      req.SelectedTest,
		Symptoms:          req.Symptoms,
		Location:          req.Location,
		TreatmentLocation: req.TreatmentLocation,
		TimeSlot:          req.TimeSlot,
		DoctorName:        req.DoctorName,
		DoctorEmail:       req.DoctorEmail,
		DoctorWhatsApp:    req.DoctorWhatsApp,
		Status:            "confirmed",
		CreatedAt:         s.now().UTC(),
	}

	if err := s.repo.Store(ctx, b); err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("failed")
		return nil, fmt.Errorf("bookings: store: %w", err)
	}

	s.dispatchNotifications(ctx, b)

	s.metrics.ObserveBooking("confirmed")
	s.metrics.ObserveSubmitLatency(s.now().Sub(start).Seconds())
	s.logger.Info("booking confirmed",
		"booking_id", b.ID,
		"service_id", b.ServiceID,
		"time_slot", b.TimeSlot,
	)
	return b, nil
}

// Submit adapts the service to the wizard's gateway contract.
func (s *Service) Submit(ctx context.Context, d booking.Draft, svc *catalog.Service) (string, error) {
	req := &BookingRequest{
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		SelectedTest:      d.SelectedTest,
		Symptoms:          d.Symptoms,
		TimeSlot:          d.TimeSlot,
		ServiceID:         d.ServiceID,
		Location:          d.Location,
		TreatmentLocation: string(d.TreatmentLocation),
		DoctorName:        svc.DoctorName,
		DoctorEmail:       svc.DoctorEmail,
		DoctorWhatsApp:    svc.DoctorWhatsApp,
		ServiceName:       svc.Name,
	}

	b, err := s.Confirm(ctx, req)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// GetByID returns a stored booking.
func (s *Service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) serviceType(serviceID string) catalog.ServiceType {
	if s.catalog == nil {
		return ""
	}
	svc, err := s.catalog.Get(serviceID)
	if err != nil {
		return ""
	}
	return svc.Type
}

func (s *Service) dispatchNotifications(ctx context.Context, b *Booking) {
	conf := notify.BookingConfirmation{
		BookingID:         b.ID,
		CustomerName:      b.Name,
		CustomerEmail:     b.Email,
		CustomerPhone:     b.Phone,
		ServiceName:       b.ServiceName,
		SelectedTest:      b.SelectedTest,
		Symptoms:          b.Symptoms,
		Location:          b.Location,
		TreatmentLocation: b.TreatmentLocation,
		TimeSlot:          b.TimeSlot,
		DoctorName:        b.DoctorName,
		DoctorEmail:       b.DoctorEmail,
		DoctorWhatsApp:    b.DoctorWhatsApp,
		CreatedAt:         b.CreatedAt,
	}

	if s.email != nil {
		subject, text, html := notify.EmailContent(conf)
		err := s.email.Send(ctx, notify.EmailMessage{
			To:      b.Email,
			ToName:  b.Name,
			Subject: subject,
			Body:    text,
			HTML:    html,
		})
		if err != nil {
			s.metrics.ObserveNotificationFailure("email")
			s.logger.Error("confirmation email failed", "error", err, "booking_id", b.ID)
		}
	}

	if s.messenger != nil {
		if err := s.messenger.SendMessage(ctx, b.DoctorWhatsApp, notify.WhatsAppMessage(conf)); err != nil {
			s.metrics.ObserveNotificationFailure("whatsapp")
			s.logger.Error("doctor whatsapp notification failed", "error", err, "booking_id", b.ID)
		}
	}
}

const bookingIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newBookingID generates a unique booking identifier: timestamp plus a short
// random suffix, e.g. BK-1700000000000-A1B2C.
func newBookingID(now time.Time) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = bookingIDCharset[rand.Intn(len(bookingIDCharset))]
	}
	return fmt.Sprintf("BK-%d-%s", now.UnixMilli(), suffix)
}
