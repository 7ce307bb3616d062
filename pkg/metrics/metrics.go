package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventx_bookings_total",
			Help: "Booking attempts by terminal status",
		},
		[]string{"event_id", "status"},
	)

	ticketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventx_tickets_issued_total",
			Help: "Tickets written to the local store",
		},
	)

	chargeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventx_payment_charge_duration_seconds",
			Help:    "Duration of simulated payment charges",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		},
		[]string{"outcome"},
	)

	walletPassFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventx_wallet_pass_failures_total",
			Help: "Wallet pass installs that failed (non-fatal)",
		},
	)
)

// TrackBooking records a booking reaching a terminal status.
func TrackBooking(eventID, status string) {
	bookingOutcomes.WithLabelValues(eventID, status).Inc()
}

// TrackTicketIssued records a successfully persisted ticket.
func TrackTicketIssued() {
	ticketsIssued.Inc()
}

// TrackCharge records the outcome and duration of a simulated charge.
func TrackCharge(outcome string, duration time.Duration) {
	chargeDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// TrackWalletPassFailure records a pass install the wallet sink rejected.
func TrackWalletPassFailure() {
	walletPassFailures.Inc()
}
