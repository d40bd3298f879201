package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BookingConfirmation carries everything the notification templates need.
type BookingConfirmation struct {
	BookingID         string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	ServiceName       string
	SelectedTest      string
	Symptoms          string
	Location          string
	TreatmentLocation string
	TimeSlot          string
	DoctorName        string
	DoctorEmail       string
	DoctorWhatsApp    string
	CreatedAt         time.Time
}

// EmailContent renders the patient confirmation email.
func EmailContent(b BookingConfirmation) (subject, text, html string) {
	subject = fmt.Sprintf("Appointment Confirmation - %s", b.ServiceName)

	var tb strings.Builder
	fmt.Fprintf(&tb, "Dear %s,\n\n", b.CustomerName)
	tb.WriteString("Thank you for booking an appointment with Buburuebi Healthcare. Your appointment has been successfully confirmed.\n\n")
	tb.WriteString("Booking Details\n")
	fmt.Fprintf(&tb, "Booking ID: %s\n", b.BookingID)
	fmt.Fprintf(&tb, "Service: %s\n", b.ServiceName)
	fmt.Fprintf(&tb, "Doctor: %s\n", b.DoctorName)
	fmt.Fprintf(&tb, "Appointment Time: %s\n", b.TimeSlot)
	if b.SelectedTest != "" {
		fmt.Fprintf(&tb, "Selected Test: %s\n", b.SelectedTest)
	}
	if b.Symptoms != "" {
		fmt.Fprintf(&tb, "Symptoms/Concerns: %s\n", b.Symptoms)
	}
	if b.TreatmentLocation != "" {
		fmt.Fprintf(&tb, "Treatment Location: %s\n", b.TreatmentLocation)
	}
	if b.Location != "" {
		fmt.Fprintf(&tb, "Address: %s\n", b.Location)
	}
	fmt.Fprintf(&tb, "\nYour appointment details have been sent to Dr. %s via WhatsApp for confirmation.\n\n", b.DoctorName)
	tb.WriteString("If you need to reschedule or have any questions, please contact us:\n")
	fmt.Fprintf(&tb, "Email: %s\n", b.DoctorEmail)
	fmt.Fprintf(&tb, "WhatsApp: +%s\n\n", b.DoctorWhatsApp)
	tb.WriteString("We look forward to seeing you soon!\n\nBest regards,\nBuburuebi Healthcare Team\n")
	text = tb.String()

	var hb strings.Builder
	hb.WriteString("<!DOCTYPE html><html><body>")
	hb.WriteString("<h1>Appointment Confirmation</h1>")
	fmt.Fprintf(&hb, "<p>Dear %s,</p>", b.CustomerName)
	hb.WriteString("<p>Thank you for booking an appointment with Buburuebi Healthcare. Your appointment has been successfully confirmed.</p>")
	hb.WriteString("<h3>Booking Details</h3><ul>")
	fmt.Fprintf(&hb, "<li><strong>Booking ID:</strong> %s</li>", b.BookingID)
	fmt.Fprintf(&hb, "<li><strong>Service:</strong> %s</li>", b.ServiceName)
	fmt.Fprintf(&hb, "<li><strong>Doctor:</strong> %s</li>", b.DoctorName)
	fmt.Fprintf(&hb, "<li><strong>Appointment Time:</strong> %s</li>", b.TimeSlot)
	if b.SelectedTest != "" {
		fmt.Fprintf(&hb, "<li><strong>Selected Test:</strong> %s</li>", b.SelectedTest)
	}
	if b.Symptoms != "" {
		fmt.Fprintf(&hb, "<li><strong>Symptoms/Concerns:</strong> %s</li>", b.Symptoms)
	}
	if b.TreatmentLocation != "" {
		fmt.Fprintf(&hb, "<li><strong>Treatment Location:</strong> %s</li>", b.TreatmentLocation)
	}
	if b.Location != "" {
		fmt.Fprintf(&hb, "<li><strong>Address:</strong> %s</li>", b.Location)
	}
	hb.WriteString("</ul>")
	fmt.Fprintf(&hb, "<p>Your appointment details have been sent to Dr. %s via WhatsApp for confirmation.</p>", b.DoctorName)
	fmt.Fprintf(&hb, "<p>If you need to reschedule, contact us at %s or WhatsApp +%s.</p>", b.DoctorEmail, b.DoctorWhatsApp)
	hb.WriteString("<p>Best regards,<br/><strong>Buburuebi Healthcare Team</strong></p>")
	fmt.Fprintf(&hb, "<p style=\"font-size:12px;color:#666\">&copy; %d Buburuebi Healthcare Services. All rights reserved.</p>", b.CreatedAt.Year())
	hb.WriteString("</body></html>")
	html = hb.String()

	return subject, text, html
}

// WhatsAppMessage renders the doctor notification for the WhatsApp channel.
func WhatsAppMessage(b BookingConfirmation) string {
	var sb strings.Builder
	sb.WriteString("*New Appointment Booking*\n\n")
	sb.WriteString("*Patient Information:*\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&sb, "Phone: %s\n\n", b.CustomerPhone)
	sb.WriteString("*Appointment Details:*\n")
	fmt.Fprintf(&sb, "Service: %s\n", b.ServiceName)
	fmt.Fprintf(&sb, "Time Slot: %s\n", b.TimeSlot)
	fmt.Fprintf(&sb, "Booking ID: %s\n\n", b.BookingID)
	if b.SelectedTest != "" {
		fmt.Fprintf(&sb, "*Selected Test:*\n%s\n\n", b.SelectedTest)
	}
	if b.Symptoms != "" {
		fmt.Fprintf(&sb, "*Symptoms/Concerns:*\n%s\n\n", b.Symptoms)
	}
	if b.TreatmentLocation != "" {
		fmt.Fprintf(&sb, "*Treatment Location:*\n%s\n\n", b.TreatmentLocation)
	}
	if b.Location != "" {
		fmt.Fprintf(&sb, "*Patient Address:*\n%s\n\n", b.Location)
	}
	sb.WriteString("*Booking Confirmation:*\n")
	sb.WriteString("This appointment has been confirmed in the system.\n")
	sb.WriteString("Please contact the patient to confirm or discuss any details.")
	return sb.String()
}

// PatientGreeting is the prefilled text a patient sends the doctor after a
// successful booking.
func PatientGreeting(doctorName, serviceName, patientName, patientEmail, timeSlot string) string {
	return fmt.Sprintf(
		"Hello Dr. %s, I have booked an appointment for %s. My name is %s, email: %s. Booked time: %s",
		doctorName, serviceName, patientName, patientEmail, timeSlot,
	)
}

// WhatsAppLink builds a wa.me deep link for the given handle with a prefilled
// message. The handle is reduced to digits; an empty handle yields "".
// Pure function, so non-browser callers can decide what to do with it.
func WhatsAppLink(handle, text string) string {
	digits := digitsOnly(handle)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

// digitsOnly strips everything but 0-9 from a phone-like handle.
func digitsOnly(value string) string {
	var sb strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
