// Package aggregate computes derived values from raw records. Everything
// here is deterministic and side-effect free; callers recompute on every
// emission of a record feed, nothing is ever persisted.
package aggregate

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise-backend/internal/models"
)

// Overview totals a user's entire transaction history.
type Overview struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// ExpenseSummary covers expense-typed transactions only.
type ExpenseSummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ComputeOverview sums income and expense over all transactions.
// Sums go through decimal so long histories don't accumulate float error.
func ComputeOverview(txns []models.Transaction) Overview {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(decimal.NewFromFloat(t.Amount))
		case models.TransactionExpense:
			expense = expense.Add(decimal.NewFromFloat(t.Amount))
		}
	}
	// Balance comes from the converted floats, not the decimal
	// subtraction, so balance == income - expense holds exactly on the
	// values callers see.
	inc := income.InexactFloat64()
	exp := expense.InexactFloat64()
	return Overview{
		Income:  inc,
		Expense: exp,
		Balance: inc - exp,
	}
}

// ComputeExpenseSummary totals and counts expense transactions.
func ComputeExpenseSummary(txns []models.Transaction) ExpenseSummary {
	total := decimal.Zero
	count := 0
	for _, t := range txns {
		if t.Type != models.TransactionExpense {
			continue
		}
		total = total.Add(decimal.NewFromFloat(t.Amount))
		count++
	}
	return ExpenseSummary{Total: total.InexactFloat64(), Count: count}
}

// GoalProgress returns the percentage saved toward the target, capped at
// 100. A zero or negative target reports 0 rather than dividing by it.
func GoalProgress(g models.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return math.Min(g.CurrentSaved/g.TargetAmount*100, 100)
}

// ExpectedReturn projects compound growth over the investment's duration
// at its annual rate. Open-ended investments (nil or zero duration)
// project no growth and return the principal unchanged.
func ExpectedReturn(inv models.Investment) float64 {
	if inv.Duration == nil || *inv.Duration == 0 {
		return inv.Amount
	}
	years := float64(*inv.Duration) / 12
	rate := inv.Interest / 100
	return inv.Amount * math.Pow(1+rate, years)
}

// MaturityDate is the start date plus the duration in months, or nil for
// open-ended investments.
func MaturityDate(inv models.Investment) *time.Time {
	if inv.Duration == nil {
		return nil
	}
	d := inv.StartDate.AddDate(0, *inv.Duration, 0)
	return &d
}
