package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buburuebi/healthcare-booking/internal/catalog"
)

func baseDraft() Draft {
	return Draft{
		ServiceID: "laboratory",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "08012345678",
	}
}

func TestSetTestClearsSymptoms(t *testing.T) {
	d := baseDraft()
	d.SetSymptoms("persistent headaches")
	d.SetTest("Complete Blood Count (CBC)")

	assert.Equal(t, "Complete Blood Count (CBC)", d.SelectedTest)
	assert.Empty(t, d.Symptoms)
}

func TestSetSymptomsClearsTest(t *testing.T) {
	d := baseDraft()
	d.SetTest("Lipid Panel")
	d.SetSymptoms("persistent headaches")

	assert.Equal(t, "persistent headaches", d.Symptoms)
	assert.Empty(t, d.SelectedTest)
}

func TestToggleOptionCap(t *testing.T) {
	var d Draft

	assert.True(t, d.ToggleOption("General Consultation"))
	assert.True(t, d.ToggleOption("Medical Counseling"))

	// A third check is refused and the set stays unchanged.
	assert.False(t, d.ToggleOption("Learn About Your Health"))
	assert.Equal(t, []string{"General Consultation", "Medical Counseling"}, d.CheckedOptions)

	// Unchecking always works, and frees a slot.
	assert.True(t, d.ToggleOption("General Consultation"))
	assert.True(t, d.ToggleOption("Learn About Your Health"))
	assert.Equal(t, []string{"Medical Counseling", "Learn About Your Health"}, d.CheckedOptions)
}

func TestSelectionSummary(t *testing.T) {
	d := Draft{SelectedTest: "Lipid Panel", CheckedOptions: []string{"ignored"}}
	assert.Equal(t, "Lipid Panel", d.SelectionSummary())

	d = Draft{CheckedOptions: []string{"General Consultation", "Medical Counseling"}}
	assert.Equal(t, "General Consultation, Medical Counseling", d.SelectionSummary())

	assert.Empty(t, (&Draft{}).SelectionSummary())
}

func TestIsStep1ValidContactFields(t *testing.T) {
	d := baseDraft()
	d.SetTest("Lipid Panel")
	assert.True(t, IsStep1Valid(catalog.TypeLaboratory, d))

	for _, clear := range []func(*Draft){
		func(d *Draft) { d.Name = "   " },
		func(d *Draft) { d.Email = "" },
		func(d *Draft) { d.Phone = "" },
	} {
		dd := d
		clear(&dd)
		assert.False(t, IsStep1Valid(catalog.TypeLaboratory, dd))
	}
}

func TestIsStep1ValidTestOrSymptoms(t *testing.T) {
	d := baseDraft()
	assert.False(t, IsStep1Valid(catalog.TypeLaboratory, d))

	d.SetSymptoms("achy")
	assert.False(t, IsStep1Valid(catalog.TypeLaboratory, d), "symptoms below 5 chars")

	d.SetSymptoms("persistent headaches")
	assert.True(t, IsStep1Valid(catalog.TypeLaboratory, d))

	d.SetTest("Complete Blood Count (CBC)")
	assert.True(t, IsStep1Valid(catalog.TypeDental, d))
}

func TestIsStep1ValidChecklistTypes(t *testing.T) {
	d := baseDraft()
	assert.False(t, IsStep1Valid(catalog.TypeConsultation, d))

	d.ToggleOption("General Consultation")
	assert.True(t, IsStep1Valid(catalog.TypeConsultation, d))
	assert.True(t, IsStep1Valid(catalog.TypePrescription, d))

	d.ToggleOption("Medical Counseling")
	assert.True(t, IsStep1Valid(catalog.TypeConsultation, d))
}

func TestIsStep1ValidHomeService(t *testing.T) {
	d := baseDraft()
	assert.False(t, IsStep1Valid(catalog.TypeHome, d))

	d.Location = "12345" // exactly the floor, still too short
	assert.False(t, IsStep1Valid(catalog.TypeHome, d))

	d.Location = "14 Azikoro Road, Yenagoa"
	assert.True(t, IsStep1Valid(catalog.TypeHome, d))
}

func TestIsStep1ValidTreatment(t *testing.T) {
	d := baseDraft()
	assert.False(t, IsStep1Valid(catalog.TypeTreatment, d), "treatment location not chosen")

	d.TreatmentLocation = TreatmentAtClinic
	assert.True(t, IsStep1Valid(catalog.TypeTreatment, d))

	d.TreatmentLocation = TreatmentAtHome
	assert.False(t, IsStep1Valid(catalog.TypeTreatment, d), "home treatment needs an address")

	d.Location = "14 Azikoro Road, Yenagoa"
	assert.True(t, IsStep1Valid(catalog.TypeTreatment, d))
}

func TestValidateBookingDataValid(t *testing.T) {
	d := baseDraft()
	d.SetTest("Complete Blood Count (CBC)")
	d.TimeSlot = "09:00 AM"

	res := ValidateBookingData(catalog.TypeLaboratory, d)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateBookingDataCollectsAllErrors(t *testing.T) {
	d := Draft{
		Name:  "J",
		Email: "not-an-email",
		Phone: "12345",
	}

	res := ValidateBookingData(catalog.TypeLaboratory, d)
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 5)

	joined := strings.Join(res.Errors, "; ")
	assert.Contains(t, joined, "Name")
	assert.Contains(t, joined, "email")
	assert.Contains(t, joined, "Phone")
	assert.Contains(t, joined, "Time slot")
}

func TestValidateBookingDataPhoneFloor(t *testing.T) {
	d := baseDraft()
	d.SetTest("Lipid Panel")
	d.TimeSlot = "09:00 AM"

	d.Phone = "080123456" // 9 chars
	assert.False(t, ValidateBookingData(catalog.TypeLaboratory, d).IsValid)

	d.Phone = "0801234567" // exactly 10
	assert.True(t, ValidateBookingData(catalog.TypeLaboratory, d).IsValid)

	d.Phone = "+234 901 234 5678" // longer than the old 11-char cap, still fine
	assert.True(t, ValidateBookingData(catalog.TypeLaboratory, d).IsValid)
}

func TestValidateBookingDataEmail(t *testing.T) {
	d := baseDraft()
	d.SetTest("Lipid Panel")
	d.TimeSlot = "09:00 AM"

	for _, bad := range []string{"plain", "a@b", "a b@c.com", "@c.com"} {
		d.Email = bad
		assert.False(t, ValidateBookingData(catalog.TypeLaboratory, d).IsValid, bad)
	}

	d.Email = "jane.doe+booking@example.co.uk"
	assert.True(t, ValidateBookingData(catalog.TypeLaboratory, d).IsValid)
}

func TestValidateBookingDataPerType(t *testing.T) {
	base := baseDraft()
	base.TimeSlot = "09:00 AM"

	t.Run("consultation needs a selection", func(t *testing.T) {
		d := base
		assert.False(t, ValidateBookingData(catalog.TypeConsultation, d).IsValid)

		d.CheckedOptions = []string{"General Consultation"}
		assert.True(t, ValidateBookingData(catalog.TypeConsultation, d).IsValid)
	})

	t.Run("home needs an address", func(t *testing.T) {
		d := base
		assert.False(t, ValidateBookingData(catalog.TypeHome, d).IsValid)

		d.Location = "14 Azikoro Road, Yenagoa"
		assert.True(t, ValidateBookingData(catalog.TypeHome, d).IsValid)
	})

	t.Run("clinic treatment waives test and symptoms", func(t *testing.T) {
		d := base
		d.TreatmentLocation = TreatmentAtClinic
		assert.True(t, ValidateBookingData(catalog.TypeTreatment, d).IsValid)
	})

	t.Run("home treatment needs an address", func(t *testing.T) {
		d := base
		d.TreatmentLocation = TreatmentAtHome
		assert.False(t, ValidateBookingData(catalog.TypeTreatment, d).IsValid)

		d.Location = "14 Azikoro Road, Yenagoa"
		assert.True(t, ValidateBookingData(catalog.TypeTreatment, d).IsValid)
	})

	t.Run("generic needs test or symptoms", func(t *testing.T) {
		d := base
		assert.False(t, ValidateBookingData(catalog.TypeDental, d).IsValid)

		d.Symptoms = "toothache"
		assert.True(t, ValidateBookingData(catalog.TypeDental, d).IsValid)
	})
}
