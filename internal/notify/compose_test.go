package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleConfirmation() BookingConfirmation {
	return BookingConfirmation{
		BookingID:      "BK-1700000000000-A1B2C",
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@x.com",
		CustomerPhone:  "08012345678",
		ServiceName:    "Medical Laboratory Services",
		SelectedTest:   "blood-test",
		TimeSlot:       "09:00 AM",
		DoctorName:     "Dr. Lab Specialist",
		DoctorEmail:    "lab@buburuebihealthcare.com",
		DoctorWhatsApp: "2349076167977",
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEmailContent(t *testing.T) {
	b := sampleConfirmation()

	subject, text, html := EmailContent(b)

	assert.Equal(t, "Appointment Confirmation - Medical Laboratory Services", subject)
	assert.Contains(t, text, "Dear Jane Doe")
	assert.Contains(t, text, "Booking ID: BK-1700000000000-A1B2C")
	assert.Contains(t, text, "Selected Test: blood-test")
	assert.Contains(t, text, "Appointment Time: 09:00 AM")
	assert.NotContains(t, text, "Symptoms/Concerns")
	assert.Contains(t, html, "<strong>Booking ID:</strong> BK-1700000000000-A1B2C")
	assert.Contains(t, html, "&copy; 2026")
}

func TestEmailContentSymptomsVariant(t *testing.T) {
	b := sampleConfirmation()
	b.SelectedTest = ""
	b.Symptoms = "persistent headaches"

	_, text, html := EmailContent(b)

	assert.Contains(t, text, "Symptoms/Concerns: persistent headaches")
	assert.NotContains(t, text, "Selected Test")
	assert.Contains(t, html, "persistent headaches")
}

func TestEmailContentHomeServiceVariant(t *testing.T) {
	b := sampleConfirmation()
	b.SelectedTest = ""
	b.TreatmentLocation = "home"
	b.Location = "No. 5 Ekeki Road, Yenagoa"

	_, text, _ := EmailContent(b)

	assert.Contains(t, text, "Treatment Location: home")
	assert.Contains(t, text, "Address: No. 5 Ekeki Road, Yenagoa")
}

func TestWhatsAppMessage(t *testing.T) {
	b := sampleConfirmation()

	msg := WhatsAppMessage(b)

	assert.Contains(t, msg, "Name: Jane Doe")
	assert.Contains(t, msg, "Time Slot: 09:00 AM")
	assert.Contains(t, msg, "Booking ID: BK-1700000000000-A1B2C")
	assert.Contains(t, msg, "*Selected Test:*\nblood-test")
	assert.NotContains(t, msg, "Symptoms")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+234 907 616 7977", "Hello Dr. Lab, time: 09:00 AM")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/2349076167977?text="), link)
	assert.Contains(t, link, "09%3A00+AM")
	assert.NotContains(t, link, " ")
}

func TestWhatsAppLinkEmptyHandle(t *testing.T) {
	assert.Equal(t, "", WhatsAppLink("   ", "hello"))
}

func TestPatientGreeting(t *testing.T) {
	got := PatientGreeting("Lab Specialist", "Medical Laboratory Services", "Jane Doe", "jane@x.com", "09:00 AM")

	assert.Equal(t, "Hello Dr. Lab Specialist, I have booked an appointment for Medical Laboratory Services. My name is Jane Doe, email: jane@x.com. Booked time: 09:00 AM", got)
}
