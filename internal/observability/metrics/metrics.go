package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	bookingsTotal        *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	submitLatency        prometheus.Histogram
	paymentsTotal        *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buburuebi",
			Subsystem: "bookings",
			Name:      "total",
			Help:      "Total booking submissions by outcome",
		}, []string{"status"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buburuebi",
			Subsystem: "bookings",
			Name:      "notification_failures_total",
			Help:      "Best-effort notification failures by channel",
		}, []string{"channel"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "buburuebi",
			Subsystem: "bookings",
			Name:      "submit_latency_seconds",
			Help:      "Latency of booking submission processing",
			Buckets:   prometheus.DefBuckets,
		}),
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buburuebi",
			Subsystem: "payments",
			Name:      "total",
			Help:      "Total payment attempts by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.notificationFailures, m.submitLatency, m.paymentsTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveNotificationFailure(channel string) {
	if m == nil {
		return
	}
	m.notificationFailures.WithLabelValues(channel).Inc()
}

func (m *BookingMetrics) ObserveSubmitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}

func (m *BookingMetrics) ObservePayment(status string) {
	if m == nil {
		return
	}
	m.paymentsTotal.WithLabelValues(status).Inc()
}
