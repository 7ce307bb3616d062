// Package payments stands in for the external payment gateway. Charges
// take a simulated processing delay and fail with a configured
// probability; callers must handle both outcomes without assuming
// determinism.
package payments

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"eventx/pkg/metrics"

	"github.com/shopspring/decimal"
)

// PaymentError describes a declined or aborted charge.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return "payments: charge failed: " + e.Reason
}

// Gateway is the narrow interface the issuer charges through.
type Gateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, currency, description string) error
}

// Config controls the simulator behaviour.
type Config struct {
	// FailureRate is the probability in [0,1] that a charge is declined.
	FailureRate float64

	// MinDelay/MaxDelay bound the simulated processing latency. Zero
	// disables the delay (used by tests).
	MinDelay time.Duration
	MaxDelay time.Duration

	// Seed makes the simulator deterministic; 0 seeds from the clock.
	Seed int64
}

// Simulator is the mock Gateway implementation.
type Simulator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a simulator with its own seeded random source.
// Injecting the seed keeps issuance tests deterministic.
func NewSimulator(cfg Config) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Charge simulates processing a payment. It sleeps for the configured
// latency window (respecting ctx cancellation and deadlines), then
// succeeds or returns a *PaymentError according to the failure rate.
func (s *Simulator) Charge(ctx context.Context, amount decimal.Decimal, currency, description string) error {
	if amount.Sign() <= 0 {
		return &PaymentError{Reason: "amount must be positive"}
	}

	start := time.Now()

	if delay := s.delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			metrics.TrackCharge("aborted", time.Since(start))
			return &PaymentError{Reason: "charge aborted: " + ctx.Err().Error()}
		}
	}

	if s.roll() < s.cfg.FailureRate {
		metrics.TrackCharge("declined", time.Since(start))
		return &PaymentError{Reason: "card declined by issuing bank"}
	}

	metrics.TrackCharge("success", time.Since(start))
	return nil
}

func (s *Simulator) delay() time.Duration {
	if s.cfg.MaxDelay <= 0 {
		return 0
	}
	if s.cfg.MaxDelay <= s.cfg.MinDelay {
		return s.cfg.MinDelay
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.MinDelay + time.Duration(s.rng.Int63n(int64(s.cfg.MaxDelay-s.cfg.MinDelay)))
}

func (s *Simulator) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
