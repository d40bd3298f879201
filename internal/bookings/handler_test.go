package bookings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *recordingEmailSender, *recordingMessenger) {
	t.Helper()
	svc, _, email, messenger := newTestService(t)
	h := NewHandler(svc, svc.logger)

	r := chi.NewRouter()
	r.Post("/api/bookings", h.CreateBooking)
	r.Get("/api/bookings/{bookingID}", h.GetBooking)
	return r, email, messenger
}

func postBooking(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingSuccess(t *testing.T) {
	router, email, messenger := newTestRouter(t)

	rec := postBooking(t, router, validLabRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Contains(t, resp.BookingID, "BK-")

	assert.Len(t, email.sent, 1)
	assert.Len(t, messenger.to, 1)
}

func TestCreateBookingMissingRequiredFields(t *testing.T) {
	router, email, messenger := newTestRouter(t)

	req := validLabRequest()
	req.ServiceID = ""

	rec := postBooking(t, router, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])

	// An incomplete request must not leak into the notification channels.
	assert.Empty(t, email.sent)
	assert.Empty(t, messenger.to)
}

func TestCreateBookingInvalidJSON(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingInvalidDraft(t *testing.T) {
	router, email, _ := newTestRouter(t)

	req := validLabRequest()
	req.Phone = "12345"

	rec := postBooking(t, router, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid booking data", resp["error"])
	assert.Empty(t, email.sent)
}

func TestCreateBookingInvalidEmailShape(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := validLabRequest()
	req.Email = "not-an-email"

	rec := postBooking(t, router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBooking(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := postBooking(t, router, validLabRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var created BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	getReq := httptest.NewRequest(http.MethodGet, "/api/bookings/"+created.BookingID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)

	var b Booking
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &b))
	assert.Equal(t, created.BookingID, b.ID)
	assert.Equal(t, "Jane Doe", b.Name)
}

func TestGetBookingNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/BK-0-XXXXX", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
