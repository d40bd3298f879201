package bookings

import "errors"

var (
	// ErrMissingFields is returned when a required boundary field is absent
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidDraft is returned when the draft fails full validation
	ErrInvalidDraft = errors.New("booking data failed validation")

	// ErrBookingNotFound is returned when a booking id is unknown
	ErrBookingNotFound = errors.New("booking not found")
)
