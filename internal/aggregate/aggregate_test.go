package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/helpers"
)

func TestComputeOverview(t *testing.T) {
	txns := []models.Transaction{
		{Type: models.TransactionIncome, Amount: 500},
		{Type: models.TransactionExpense, Amount: 200},
		{Type: models.TransactionExpense, Amount: 100},
	}

	ov := ComputeOverview(txns)

	require.Equal(t, 500.0, ov.Income)
	require.Equal(t, 300.0, ov.Expense)
	require.Equal(t, 200.0, ov.Balance)
}

func TestComputeOverviewEmpty(t *testing.T) {
	ov := ComputeOverview(nil)

	require.Zero(t, ov.Income)
	require.Zero(t, ov.Expense)
	require.Zero(t, ov.Balance)
}

func TestComputeOverviewIgnoresUnknownType(t *testing.T) {
	ov := ComputeOverview([]models.Transaction{
		{Type: "transfer", Amount: 999},
		{Type: models.TransactionIncome, Amount: 10},
	})

	require.Equal(t, 10.0, ov.Income)
	require.Zero(t, ov.Expense)
}

func TestComputeOverviewExactCents(t *testing.T) {
	// 0.1+0.2 style drift must not leak into the totals.
	txns := []models.Transaction{
		{Type: models.TransactionExpense, Amount: 0.1},
		{Type: models.TransactionExpense, Amount: 0.2},
	}

	ov := ComputeOverview(txns)

	require.Equal(t, 0.3, ov.Expense)
	require.Equal(t, -0.3, ov.Balance)
}

func TestComputeOverviewBalanceIdentity(t *testing.T) {
	// 0.01 - 0.03 in float64 is -0.020000000000000004, not -0.02. The
	// balance must equal the float subtraction of the exported totals,
	// not a separately rounded value.
	ov := ComputeOverview([]models.Transaction{
		{Type: models.TransactionIncome, Amount: 0.01},
		{Type: models.TransactionExpense, Amount: 0.03},
	})

	require.Equal(t, ov.Income-ov.Expense, ov.Balance)
}

func TestComputeExpenseSummary(t *testing.T) {
	txns := []models.Transaction{
		{Type: models.TransactionIncome, Amount: 500},
		{Type: models.TransactionExpense, Amount: 200},
		{Type: models.TransactionExpense, Amount: 100},
	}

	s := ComputeExpenseSummary(txns)

	require.Equal(t, 300.0, s.Total)
	require.Equal(t, 2, s.Count)
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal models.Goal
		want float64
	}{
		{"halfway", models.Goal{TargetAmount: 1000, CurrentSaved: 500}, 50},
		{"complete", models.Goal{TargetAmount: 1000, CurrentSaved: 1000}, 100},
		{"overfunded is capped", models.Goal{TargetAmount: 1000, CurrentSaved: 1500}, 100},
		{"nothing saved", models.Goal{TargetAmount: 1000, CurrentSaved: 0}, 0},
		{"zero target", models.Goal{TargetAmount: 0, CurrentSaved: 500}, 0},
		{"negative target", models.Goal{TargetAmount: -10, CurrentSaved: 500}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GoalProgress(tt.goal))
		})
	}
}

func TestExpectedReturnOpenEnded(t *testing.T) {
	inv := models.Investment{Amount: 5000, Interest: 8}

	require.Equal(t, 5000.0, ExpectedReturn(inv))

	inv.Duration = helpers.Ptr(0)
	require.Equal(t, 5000.0, ExpectedReturn(inv))
}

func TestExpectedReturnCompounds(t *testing.T) {
	inv := models.Investment{Amount: 10000, Interest: 10, Duration: helpers.Ptr(12)}

	require.InDelta(t, 11000.0, ExpectedReturn(inv), 1e-9)
}

func TestExpectedReturnFractionalYears(t *testing.T) {
	inv := models.Investment{Amount: 10000, Interest: 10, Duration: helpers.Ptr(18)}

	want := 10000 * math.Pow(1.10, 1.5)
	require.InDelta(t, want, ExpectedReturn(inv), 1e-9)
}

func TestMaturityDate(t *testing.T) {
	start := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	inv := models.Investment{StartDate: start, Duration: helpers.Ptr(12)}

	got := MaturityDate(inv)
	require.NotNil(t, got)
	require.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestMaturityDateOpenEnded(t *testing.T) {
	inv := models.Investment{StartDate: time.Now()}

	require.Nil(t, MaturityDate(inv))
}
