package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

var whatsappTracer = otel.Tracer("buburuebi.internal.notify.whatsapp")

// MessageSender dispatches a text message to a WhatsApp handle.
type MessageSender interface {
	SendMessage(ctx context.Context, to, body string) error
}

// LogMessenger is the default messenger; it only logs the message it would
// deliver.
type LogMessenger struct {
	logger *logging.Logger
}

// NewLogMessenger creates a log-only messenger.
func NewLogMessenger(logger *logging.Logger) *LogMessenger {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogMessenger{logger: logger}
}

// SendMessage logs the message instead of delivering it.
func (m *LogMessenger) SendMessage(ctx context.Context, to, body string) error {
	m.logger.Info("whatsapp message to be sent",
		"to", to,
		"body_len", len(body),
	)
	return nil
}

// TwilioWhatsAppSender posts WhatsApp messages using Twilio's REST API.
type TwilioWhatsAppSender struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewTwilioWhatsAppSender builds a sender with sane defaults.
func NewTwilioWhatsAppSender(accountSID, authToken, from string, logger *logging.Logger) *TwilioWhatsAppSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &TwilioWhatsAppSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// SendMessage dispatches a single WhatsApp message.
func (s *TwilioWhatsAppSender) SendMessage(ctx context.Context, to, body string) error {
	if s.accountSID == "" || s.authToken == "" {
		return errors.New("notify: twilio credentials missing")
	}
	if digitsOnly(to) == "" {
		return errors.New("notify: to required")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New("notify: body required")
	}

	ctx, span := whatsappTracer.Start(ctx, "notify.whatsapp.send")
	defer span.End()
	span.SetAttributes(
		attribute.String("buburuebi.to", to),
	)

	payload := url.Values{}
	payload.Set("To", "whatsapp:+"+digitsOnly(to))
	payload.Set("From", "whatsapp:+"+digitsOnly(s.from))
	payload.Set("Body", body)

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload.Encode()))
	if err != nil {
		return fmt.Errorf("notify: build twilio request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: twilio send: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("twilio rejected whatsapp message",
			"status", resp.StatusCode,
			"body", string(respBody),
		)
		return fmt.Errorf("notify: twilio returned status %d", resp.StatusCode)
	}

	s.logger.Info("whatsapp message sent", "to", to)
	return nil
}
