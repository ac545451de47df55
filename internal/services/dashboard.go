package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pennywise-app/pennywise-backend/internal/aggregate"
	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/models"
)

type dashboardTransactions interface {
	ListAll(ctx context.Context, uid string) ([]models.Transaction, error)
	ListRecent(ctx context.Context, uid string, limit int) ([]models.Transaction, error)
}

type dashboardGoals interface {
	ListAll(ctx context.Context, uid string) ([]models.Goal, error)
}

type dashboardInvestments interface {
	ListAll(ctx context.Context, uid string) ([]models.Investment, error)
}

type dashboardService struct {
	txns  dashboardTransactions
	goals dashboardGoals
	invs  dashboardInvestments
}

func NewDashboardService(txns dashboardTransactions, goals dashboardGoals, invs dashboardInvestments) *dashboardService {
	return &dashboardService{txns: txns, goals: goals, invs: invs}
}

// GetDashboard assembles the whole dashboard screen in one call. The four
// reads are independent, so they run concurrently; any failure fails the
// response as a whole.
func (s *dashboardService) GetDashboard(ctx context.Context, uid string) (dto.DashboardResponse, error) {
	var (
		all    []models.Transaction
		recent []models.Transaction
		goals  []models.Goal
		invs   []models.Investment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.txns.ListAll(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.txns.ListRecent(gctx, uid, defaultRecentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.ListAll(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		invs, err = s.invs.ListAll(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.DashboardResponse{}, err
	}

	resp := dto.DashboardResponse{
		Overview:           aggregate.ComputeOverview(all),
		ExpenseSummary:     aggregate.ComputeExpenseSummary(all),
		RecentTransactions: recent,
		Goals:              make([]dto.GoalResponse, 0, len(goals)),
		Investments:        make([]dto.InvestmentResponse, 0, len(invs)),
	}
	for _, goal := range goals {
		resp.Goals = append(resp.Goals, dto.NewGoalResponse(goal, aggregate.GoalProgress(goal)))
	}
	for _, inv := range invs {
		resp.Investments = append(resp.Investments, investmentResponse(inv))
	}
	return resp, nil
}
