package booking

import (
	"regexp"
	"strings"

	"github.com/buburuebi/healthcare-booking/internal/catalog"
)

// minLocationLen is the exclusive lower bound on a home-service address.
const minLocationLen = 5

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsStep1Valid reports whether a working draft satisfies the step 1
// completeness rules for the given service type. Pure; no side effects.
func IsStep1Valid(serviceType catalog.ServiceType, d Draft) bool {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Email) == "" ||
		strings.TrimSpace(d.Phone) == "" {
		return false
	}

	switch serviceType {
	case catalog.TypeConsultation, catalog.TypePrescription:
		n := len(d.CheckedOptions)
		return n >= 1 && n <= MaxCheckedOptions
	case catalog.TypeHome:
		return len(strings.TrimSpace(d.Location)) > minLocationLen
	case catalog.TypeTreatment:
		switch d.TreatmentLocation {
		case TreatmentAtClinic:
			return true
		case TreatmentAtHome:
			return len(strings.TrimSpace(d.Location)) > minLocationLen
		default:
			return false
		}
	default:
		// laboratory, dental and anything unrecognised: a test choice or a
		// usable symptom description.
		return d.SelectedTest != "" || len(strings.TrimSpace(d.Symptoms)) >= 5
	}
}

// Result is the outcome of a full-draft validation.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateBookingData re-checks a complete draft before final submission.
// It runs both client-side (pre-submit) and at the trust boundary, since
// client checks are not a security guarantee.
//
// The phone rule is a floor of 10 characters. An earlier form variant capped
// the length at 11 instead; the two rules contradict each other and the
// floor is the one kept.
func ValidateBookingData(serviceType catalog.ServiceType, d Draft) Result {
	var errs []string

	if len(strings.TrimSpace(d.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters")
	}
	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, "Invalid email address")
	}
	if len(strings.TrimSpace(d.Phone)) < 10 {
		errs = append(errs, "Phone must be at least 10 characters")
	}
	if strings.TrimSpace(d.TimeSlot) == "" {
		errs = append(errs, "Time slot must be selected")
	}

	switch serviceType {
	case catalog.TypeHome:
		if len(strings.TrimSpace(d.Location)) <= minLocationLen {
			errs = append(errs, "A delivery address is required for home service")
		}
	case catalog.TypeTreatment:
		switch d.TreatmentLocation {
		case TreatmentAtClinic:
			// no address needed
		case TreatmentAtHome:
			if len(strings.TrimSpace(d.Location)) <= minLocationLen {
				errs = append(errs, "A delivery address is required for home treatment")
			}
		default:
			errs = append(errs, "Choose where you want to receive treatment")
		}
	case catalog.TypeConsultation, catalog.TypePrescription:
		if d.SelectionSummary() == "" {
			errs = append(errs, "Select at least one option")
		}
	default:
		if d.SelectedTest == "" && d.Symptoms == "" {
			errs = append(errs, "Either select a test or describe your symptoms")
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}
