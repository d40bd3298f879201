// Package gateway submits completed booking drafts to the bookings API.
// The wizard talks to this client so the same flow works whether the
// bookings service runs in-process or on a separate deployment.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/buburuebi/healthcare-booking/internal/booking"
	"github.com/buburuebi/healthcare-booking/internal/bookings"
	"github.com/buburuebi/healthcare-booking/internal/catalog"
	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

var (
	// ErrInvalidInput means the bookings API refused the draft as malformed
	// or incomplete.
	ErrInvalidInput = errors.New("gateway: booking rejected as invalid")

	// ErrRejected means the bookings API failed to process an otherwise
	// well-formed draft.
	ErrRejected = errors.New("gateway: booking submission rejected")

	// ErrTimeout means the bookings API did not answer within the deadline.
	ErrTimeout = errors.New("gateway: booking submission timed out")
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the bookings API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout bounds each submission attempt.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a bookings API client.
// baseURL is the API root, e.g. "https://booking.buburuebihealthcare.com".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Submit posts a completed draft to the bookings API and returns the booking
// id. The draft carries the patient fields; the service supplies the doctor
// routing details.
func (c *Client) Submit(ctx context.Context, d booking.Draft, svc *catalog.Service) (string, error) {
	payload := bookings.BookingRequest{
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		SelectedTest:      d.SelectedTest,
		Symptoms:          d.Symptoms,
		TimeSlot:          d.TimeSlot,
		ServiceID:         d.ServiceID,
		Location:          d.Location,
		TreatmentLocation: string(d.TreatmentLocation),
		DoctorName:        svc.DoctorName,
		DoctorEmail:       svc.DoctorEmail,
		DoctorWhatsApp:    svc.DoctorWhatsApp,
		ServiceName:       svc.Name,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gateway: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			c.logger.Warn("booking submission timed out", "service_id", d.ServiceID)
			return "", ErrTimeout
		}
		return "", fmt.Errorf("gateway: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var result bookings.BookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("gateway: decode response: %w", err)
		}
		if !result.Success || result.BookingID == "" {
			return "", ErrRejected
		}
		c.logger.Info("booking submitted", "booking_id", result.BookingID, "service_id", d.ServiceID)
		return result.BookingID, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		c.logger.Warn("booking rejected by API", "status", resp.StatusCode, "error", apiErr.Error)
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, apiErr.Error)

	default:
		c.logger.Error("bookings API error", "status", resp.StatusCode)
		return "", ErrRejected
	}
}

// isClientTimeout reports whether the error came from the http.Client's own
// timeout rather than the caller's context.
func isClientTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
