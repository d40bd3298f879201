// Package bookings is the trust boundary that turns a completed booking
// draft into a recorded, notified booking.
package bookings

import (
	"strings"
	"time"

	"github.com/buburuebi/healthcare-booking/internal/booking"
)

// BookingRequest is the POST /api/bookings body. Client-side checks are not
// a security guarantee, so the same draft validation runs again here.
type BookingRequest struct {
	Name              string `json:"name" validate:"required,min=2"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,min=10"`
	SelectedTest      string `json:"selectedTest,omitempty" validate:"omitempty"`
	Symptoms          string `json:"symptoms,omitempty" validate:"omitempty"`
	TimeSlot          string `json:"timeSlot" validate:"required"`
	ServiceID         string `json:"serviceId" validate:"required"`
	Location          string `json:"location,omitempty"`
	TreatmentLocation string `json:"treatmentLocation,omitempty" validate:"omitempty,oneof=clinic home"`
	DoctorName        string `json:"doctorName"`
	DoctorEmail       string `json:"doctorEmail"`
	DoctorWhatsApp    string `json:"doctorWhatsApp"`
	ServiceName       string `json:"serviceName"`
}

// HasRequiredFields checks the boundary contract's hard requirements.
// Everything else degrades to a validation error with detail; missing any of
// these is a flat 400.
func (r *BookingRequest) HasRequiredFields() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		strings.TrimSpace(r.Phone) != "" &&
		strings.TrimSpace(r.TimeSlot) != "" &&
		strings.TrimSpace(r.ServiceID) != ""
}

// Draft converts the wire request into a booking draft for validation.
func (r *BookingRequest) Draft() booking.Draft {
	return booking.Draft{
		ServiceID:         r.ServiceID,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		SelectedTest:      r.SelectedTest,
		Symptoms:          r.Symptoms,
		TimeSlot:          r.TimeSlot,
		Location:          r.Location,
		TreatmentLocation: booking.TreatmentLocation(r.TreatmentLocation),
	}
}

// Booking is a recorded booking.
type Booking struct {
	ID                string    `json:"id"`
	ServiceID         string    `json:"service_id"`
	ServiceName       string    `json:"service_name"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	SelectedTest      string    `json:"selected_test,omitempty"`
	Symptoms          string    `json:"symptoms,omitempty"`
	Location          string    `json:"location,omitempty"`
	TreatmentLocation string    `json:"treatment_location,omitempty"`
	TimeSlot          string    `json:"time_slot"`
	DoctorName        string    `json:"doctor_name"`
	DoctorEmail       string    `json:"doctor_email"`
	DoctorWhatsApp    string    `json:"doctor_whatsapp"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// BookingResponse is the success body for POST /api/bookings.
type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}
