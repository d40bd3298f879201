package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buburuebi/healthcare-booking/internal/booking"
	"github.com/buburuebi/healthcare-booking/internal/bookings"
	"github.com/buburuebi/healthcare-booking/internal/catalog"
)

func testDraftAndService(t *testing.T) (booking.Draft, *catalog.Service) {
	t.Helper()
	svc, err := catalog.Default().Get("laboratory")
	require.NoError(t, err)

	return booking.Draft{
		ServiceID:    "laboratory",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "08012345678",
		SelectedTest: "Complete Blood Count (CBC)",
		TimeSlot:     "09:00 AM",
	}, svc
}

func TestSubmitSuccess(t *testing.T) {
	var received bookings.BookingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(bookings.BookingResponse{
			Success:   true,
			Message:   "Booking confirmed successfully",
			BookingID: "BK-1700000000000-A1B2C",
		})
	}))
	defer server.Close()

	d, svc := testDraftAndService(t)
	client := NewClient(server.URL)

	id, err := client.Submit(context.Background(), d, svc)
	require.NoError(t, err)
	assert.Equal(t, "BK-1700000000000-A1B2C", id)

	// Doctor routing comes from the catalog entry, not the draft.
	assert.Equal(t, svc.DoctorWhatsApp, received.DoctorWhatsApp)
	assert.Equal(t, svc.Name, received.ServiceName)
	assert.Equal(t, "Jane Doe", received.Name)
}

func TestSubmitInvalidInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Missing required fields"})
	}))
	defer server.Close()

	d, svc := testDraftAndService(t)
	client := NewClient(server.URL)

	_, err := client.Submit(context.Background(), d, svc)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Missing required fields")
}

func TestSubmitServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d, svc := testDraftAndService(t)
	client := NewClient(server.URL)

	_, err := client.Submit(context.Background(), d, svc)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSubmitUnsuccessfulBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bookings.BookingResponse{Success: false})
	}))
	defer server.Close()

	d, svc := testDraftAndService(t)
	client := NewClient(server.URL)

	_, err := client.Submit(context.Background(), d, svc)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSubmitTimeout(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	d, svc := testDraftAndService(t)
	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))

	_, err := client.Submit(context.Background(), d, svc)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSubmitContextDeadline(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	d, svc := testDraftAndService(t)
	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Submit(ctx, d, svc)
	assert.ErrorIs(t, err, ErrTimeout)
}
