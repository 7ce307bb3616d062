package payments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeAlwaysSucceedsAtZeroFailureRate(t *testing.T) {
	sim := NewSimulator(Config{FailureRate: 0, Seed: 1})

	for i := 0; i < 50; i++ {
		err := sim.Charge(context.Background(), decimal.NewFromInt(1500), "RUB", "Ticket")
		require.NoError(t, err)
	}
}

func TestChargeAlwaysFailsAtFullFailureRate(t *testing.T) {
	sim := NewSimulator(Config{FailureRate: 1, Seed: 1})

	err := sim.Charge(context.Background(), decimal.NewFromInt(450), "RUB", "Ticket")
	require.Error(t, err)

	var payErr *PaymentError
	assert.ErrorAs(t, err, &payErr)
	assert.Contains(t, payErr.Reason, "declined")
}

func TestChargeRejectsNonPositiveAmounts(t *testing.T) {
	sim := NewSimulator(Config{Seed: 1})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		err := sim.Charge(context.Background(), amount, "RUB", "Ticket")
		var payErr *PaymentError
		require.ErrorAs(t, err, &payErr)
	}
}

func TestChargeSeededOutcomesAreDeterministic(t *testing.T) {
	run := func() []bool {
		sim := NewSimulator(Config{FailureRate: 0.5, Seed: 42})
		outcomes := make([]bool, 100)
		for i := range outcomes {
			outcomes[i] = sim.Charge(context.Background(), decimal.NewFromInt(100), "RUB", "x") == nil
		}
		return outcomes
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)

	// a 0.5 failure rate over 100 charges produces both outcomes
	assert.Contains(t, first, true)
	assert.Contains(t, first, false)
}

func TestChargeAbortsOnCancelledContext(t *testing.T) {
	sim := NewSimulator(Config{
		FailureRate: 0,
		MinDelay:    time.Hour,
		MaxDelay:    time.Hour,
		Seed:        1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := sim.Charge(ctx, decimal.NewFromInt(100), "RUB", "Ticket")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Contains(t, payErr.Reason, "aborted")
}
