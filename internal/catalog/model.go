// Package catalog holds the static service catalog the booking flow is built on.
package catalog

// ServiceType identifies the kind of healthcare service being booked. It
// drives which fields the booking wizard requires in step 1.
type ServiceType string

const (
	TypeLaboratory   ServiceType = "laboratory"
	TypeDental       ServiceType = "dental"
	TypeConsultation ServiceType = "consultation"
	TypePrescription ServiceType = "prescription"
	TypeTreatment    ServiceType = "treatment"
	TypeHome         ServiceType = "home"
)

// TestOption is a selectable test or procedure offered by a service.
type TestOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Service is a bookable healthcare offering. Records are immutable once the
// catalog has been loaded.
type Service struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           ServiceType  `json:"type"`
	Description    string       `json:"description"`
	DoctorName     string       `json:"doctor_name"`
	DoctorEmail    string       `json:"doctor_email"`
	DoctorWhatsApp string       `json:"doctor_whatsapp"`
	AvailableSlots []string     `json:"available_slots"`
	TestOptions    []TestOption `json:"test_options,omitempty"`

	// Fee amounts in naira, used for display in the payment step. Zero
	// means not applicable.
	ConsultationFee int64 `json:"consultation_fee,omitempty"`
	DepositAmount   int64 `json:"deposit_amount,omitempty"`
}

// HasSlot reports whether slot is one of the service's available time labels.
// Slot order is preserved for display; duplicates are tolerated.
func (s *Service) HasSlot(slot string) bool {
	for _, v := range s.AvailableSlots {
		if v == slot {
			return true
		}
	}
	return false
}

// OptionMenu returns the checklist menu shown for consultation and
// prescription services, or the service's own test options otherwise.
func (s *Service) OptionMenu() []TestOption {
	if len(s.TestOptions) > 0 {
		return s.TestOptions
	}
	switch s.Type {
	case TypeConsultation:
		return consultationOptions
	case TypePrescription:
		return prescriptionOptions
	}
	return nil
}
