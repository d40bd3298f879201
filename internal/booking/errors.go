package booking

import "errors"

var (
	// ErrStep1Incomplete is returned when the step 1 fields fail validation
	ErrStep1Incomplete = errors.New("please fill in all required fields")

	// ErrInvalidSlot is returned when the chosen time slot is not offered by the service
	ErrInvalidSlot = errors.New("please select a valid time slot")

	// ErrPaymentFailed is returned when the payment step does not complete
	ErrPaymentFailed = errors.New("payment failed, please try again")

	// ErrMissingInfo is returned when committed form data lost its required fields
	ErrMissingInfo = errors.New("missing required information")

	// ErrInvalidTransition is returned for an operation outside its allowed step
	ErrInvalidTransition = errors.New("operation not allowed in the current step")

	// ErrOperationInFlight is returned when a payment or submission is already running
	ErrOperationInFlight = errors.New("a request for this step is already in progress")

	// ErrSessionReset is returned when an async result arrives after the wizard was reset
	ErrSessionReset = errors.New("session was reset")

	// ErrSessionNotFound is returned for unknown or expired wizard sessions
	ErrSessionNotFound = errors.New("booking session not found")
)
