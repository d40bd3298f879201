// Package payments models the payment step of the booking wizard. The real
// gateway integration is not built yet; the simulated processor keeps the
// pending -> success/failure shape so one can be substituted without
// restructuring the wizard.
package payments

import (
	"context"
	"time"

	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

// Charge describes a payment attempt for a booking.
type Charge struct {
	ServiceID   string
	ServiceName string
	TimeSlot    string
	// Amount in naira. Zero for services without an upfront fee.
	Amount int64
}

// Processor settles a charge against a payment gateway.
type Processor interface {
	Charge(ctx context.Context, c Charge) error
}

// SimulatedProcessor stands in for a real gateway. It waits for the
// configured round-trip delay and then succeeds, or fails with the injected
// error. Cancelling the context aborts the charge.
type SimulatedProcessor struct {
	delay  time.Duration
	fail   error
	logger *logging.Logger
}

// SimulatedOption configures a SimulatedProcessor.
type SimulatedOption func(*SimulatedProcessor)

// WithFailure makes every charge fail with err. Used in tests.
func WithFailure(err error) SimulatedOption {
	return func(p *SimulatedProcessor) {
		p.fail = err
	}
}

// NewSimulatedProcessor creates a processor with the given gateway delay.
func NewSimulatedProcessor(delay time.Duration, logger *logging.Logger, opts ...SimulatedOption) *SimulatedProcessor {
	if logger == nil {
		logger = logging.Default()
	}
	p := &SimulatedProcessor{delay: delay, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Charge simulates a gateway round trip.
func (p *SimulatedProcessor) Charge(ctx context.Context, c Charge) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if p.fail != nil {
		p.logger.Warn("simulated payment declined",
			"service_id", c.ServiceID,
			"amount", c.Amount,
		)
		return p.fail
	}

	p.logger.Info("simulated payment accepted",
		"service_id", c.ServiceID,
		"time_slot", c.TimeSlot,
		"amount", c.Amount,
	)
	return nil
}
