// Package booking implements the appointment booking wizard: the draft form
// data, the step validators and the three-step state machine that turns a
// draft into a submitted booking.
package booking

import "strings"

// TreatmentLocation says where a treatment booking takes place.
type TreatmentLocation string

const (
	TreatmentAtClinic TreatmentLocation = "clinic"
	TreatmentAtHome   TreatmentLocation = "home"
)

// MaxCheckedOptions caps the consultation/prescription checklist.
const MaxCheckedOptions = 2

// Draft is the in-progress booking form data for one wizard session.
// SelectedTest and Symptoms are mutually exclusive; use the mutators to
// keep that invariant.
type Draft struct {
	ServiceID         string            `json:"serviceId"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	SelectedTest      string            `json:"selectedTest,omitempty"`
	Symptoms          string            `json:"symptoms,omitempty"`
	TimeSlot          string            `json:"timeSlot,omitempty"`
	Location          string            `json:"location,omitempty"`
	TreatmentLocation TreatmentLocation `json:"treatmentLocation,omitempty"`
	CheckedOptions    []string          `json:"checkedOptions,omitempty"`
}

// SetTest records a test selection and clears any symptom description.
func (d *Draft) SetTest(value string) {
	d.SelectedTest = value
	if value != "" {
		d.Symptoms = ""
	}
}

// SetSymptoms records a symptom description and clears any test selection.
func (d *Draft) SetSymptoms(value string) {
	d.Symptoms = value
	if value != "" {
		d.SelectedTest = ""
	}
}

// ToggleOption checks or unchecks a checklist option. Checking a third
// option when two are already checked leaves the set unchanged and returns
// false; every other call returns true.
func (d *Draft) ToggleOption(label string) bool {
	for i, v := range d.CheckedOptions {
		if v == label {
			d.CheckedOptions = append(d.CheckedOptions[:i], d.CheckedOptions[i+1:]...)
			return true
		}
	}
	if len(d.CheckedOptions) >= MaxCheckedOptions {
		return false
	}
	d.CheckedOptions = append(d.CheckedOptions, label)
	return true
}

// SelectionSummary is what goes out as the "selected test" on submission:
// the explicit test choice, or the joined checklist for consultation and
// prescription bookings.
func (d *Draft) SelectionSummary() string {
	if d.SelectedTest != "" {
		return d.SelectedTest
	}
	return strings.Join(d.CheckedOptions, ", ")
}
