package catalog

// laboratoryTestOptions is the menu of laboratory tests offered.
var laboratoryTestOptions = []TestOption{
	{ID: "blood-test", Label: "Complete Blood Count (CBC)", Value: "blood-test", Description: "Comprehensive blood analysis"},
	{ID: "lipid-panel", Label: "Lipid Panel", Value: "lipid-panel", Description: "Cholesterol and fat levels"},
	{ID: "thyroid", Label: "Thyroid Function Test", Value: "thyroid", Description: "TSH and thyroid hormone levels"},
	{ID: "diabetes", Label: "Diabetes Screening", Value: "diabetes", Description: "Blood glucose and HbA1c tests"},
	{ID: "liver", Label: "Liver Function Test", Value: "liver", Description: "Liver enzyme and bilirubin levels"},
	{ID: "kidney", Label: "Kidney Function Test", Value: "kidney", Description: "Creatinine and kidney health markers"},
}

// dentalTestOptions is the menu of dental procedures offered.
var dentalTestOptions = []TestOption{
	{ID: "cleaning", Label: "Professional Cleaning", Value: "cleaning", Description: "Deep teeth and gum cleaning"},
	{ID: "checkup", Label: "Dental Checkup", Value: "checkup", Description: "Full mouth examination and X-rays"},
	{ID: "extraction", Label: "Tooth Extraction", Value: "extraction", Description: "Safe extraction procedure"},
	{ID: "filling", Label: "Tooth Filling", Value: "filling", Description: "Cavity treatment and restoration"},
	{ID: "root-canal", Label: "Root Canal Treatment", Value: "root-canal", Description: "Advanced endodontic treatment"},
}

// consultationOptions is the fixed checklist for consultation bookings.
// Patients may select at most two.
var consultationOptions = []TestOption{
	{ID: "general", Label: "General Consultation", Value: "general"},
	{ID: "physician", Label: "Talk to a Physician Today", Value: "physician"},
	{ID: "learn", Label: "Learn About Your Health", Value: "learn"},
	{ID: "counseling", Label: "Medical Counseling", Value: "counseling"},
}

// prescriptionOptions is the fixed checklist for prescription bookings.
var prescriptionOptions = []TestOption{
	{ID: "unwell", Label: "I Feel Unwell", Value: "unwell"},
	{ID: "supplements", Label: "Order Supplements", Value: "supplements"},
}

const defaultWhatsApp = "2349076167977"

var morningToEveningSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// defaultServices reproduces the clinic's production catalog.
func defaultServices() []*Service {
	return []*Service{
		{
			ID:             "laboratory",
			Name:           "Medical Laboratory Services",
			Type:           TypeLaboratory,
			Description:    "Advanced laboratory testing and diagnostic services",
			DoctorName:     "Dr. Lab Specialist",
			DoctorEmail:    "lab@buburuebihealthcare.com",
			DoctorWhatsApp: defaultWhatsApp,
			AvailableSlots: morningToEveningSlots,
			TestOptions:    laboratoryTestOptions,
		},
		{
			ID:             "dental",
			Name:           "Dental Services",
			Type:           TypeDental,
			Description:    "Professional dental care for a healthy smile",
			DoctorName:     "Dr. Dental Expert",
			DoctorEmail:    "dental@buburuebihealthcare.com",
			DoctorWhatsApp: defaultWhatsApp,
			AvailableSlots: []string{
				"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
				"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
			},
			TestOptions: dentalTestOptions,
		},
		{
			ID:             "consultation",
			Name:           "Consultations & Counselling",
			Type:           TypeConsultation,
			Description:    "Expert medical advice and mental health support",
			DoctorName:     "Dr. Consultation Specialist",
			DoctorEmail:    "consultation@buburuebihealthcare.com",
			DoctorWhatsApp: defaultWhatsApp,
			AvailableSlots: []string{
				"10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM",
				"04:00 PM", "05:00 PM", "06:00 PM", "07:00 PM",
			},
			TestOptions:     consultationOptions,
			ConsultationFee: 5000,
		},
		{
			ID:             "prescription",
			Name:           "Prescriptions & Recommendations",
			Type:           TypePrescription,
			Description:    "Prescriptions, refills and supplement recommendations",
			DoctorName:     "Dr. Pharmacy Lead",
			DoctorEmail:    "prescription@buburuebihealthcare.com",
			DoctorWhatsApp: defaultWhatsApp,
			AvailableSlots: morningToEveningSlots,
			TestOptions:    prescriptionOptions,
		},
		{
			ID:             "treatment",
			Name:           "Treatment & Patient Management",
			Type:           TypeTreatment,
			Description:    "Ongoing treatment at the clinic or in your home",
			DoctorName:     "Dr. Treatment Coordinator",
			DoctorEmail:    "treatment@buburuebihealthcare.com",
			DoctorWhatsApp: defaultWhatsApp,
			AvailableSlots: morningToEveningSlots,

			ConsultationFee: 7500,
			DepositAmount:   10500,
		},
		{
			ID:             "home",
			Name:           "Home Service",
			Type:           TypeHome,
			Description:    "Our medical team comes to you, within Bayelsa State",
			DoctorName:     "Dr. Home Care Lead",
			DoctorEmail:    "homecare@buburuebihealthcare.com",
			DoctorWhatsApp: defaultWhatsApp,
			AvailableSlots: morningToEveningSlots,

			DepositAmount: 10500,
		},
	}
}
