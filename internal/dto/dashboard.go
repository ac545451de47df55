package dto

import (
	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

// DashboardResponse is everything the dashboard screen shows in one round
// trip: totals over the whole history, the latest few transactions, and
// the user's goals and investments with their derived values attached.
type DashboardResponse struct {
	Overview           aggregate.Overview       `json:"overview"`
	ExpenseSummary     aggregate.ExpenseSummary `json:"expenseSummary"`
	RecentTransactions []models.Transaction     `json:"recentTransactions"`
	Goals              []GoalResponse           `json:"goals"`
	Investments        []InvestmentResponse     `json:"investments"`
}
