package bookings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

// Handler handles HTTP requests for bookings.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *logging.Logger
}

// NewHandler creates a new bookings handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateBooking handles POST /api/bookings requests.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.HasRequiredFields() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("booking request failed shape validation", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid booking data")
		return
	}

	booking, err := h.service.Confirm(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			writeError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrInvalidDraft):
			h.logger.Warn("booking request rejected", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid booking data")
		default:
			h.logger.Error("booking processing failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process booking")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(BookingResponse{
		Success:   true,
		Message:   "Booking confirmed successfully",
		BookingID: booking.ID,
	})
}

// GetBooking handles GET /api/bookings/{bookingID} requests.
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		writeError(w, http.StatusBadRequest, "missing booking id")
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		h.logger.Error("failed to fetch booking", "error", err, "booking_id", bookingID)
		writeError(w, http.StatusInternalServerError, "failed to fetch booking")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
